package platform

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireSingleInstance_RejectsSecondInstance(t *testing.T) {
	const name = "boxtimer-single-instance-test"

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	defer func() {
		_ = guard.Release()
	}()

	_, err = AcquireSingleInstance(name)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))
}

func TestAcquireSingleInstance_ReleaseAllowsReacquire(t *testing.T) {
	const name = "boxtimer-reacquire-test"

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Equal(t, guard.Address(), again.Address())
	assert.NoError(t, again.Release())
}

func TestPortFromName_InRange(t *testing.T) {
	for _, name := range []string{"", "BoxTimer", "another"} {
		port := portFromName(name)
		assert.GreaterOrEqual(t, port, 20000)
		assert.LessOrEqual(t, port, 39999)
	}
	assert.Equal(t, portFromName("BoxTimer"), portFromName("BoxTimer"))
}

func TestInstanceGuard_NilSafe(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}

func TestServe_ActivatesOnSecondLaunch(t *testing.T) {
	const name = "boxtimer-activate-test"

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)

	activated := make(chan struct{}, 1)
	served := make(chan struct{})
	go func() {
		guard.Serve(func() {
			activated <- struct{}{}
		})
		close(served)
	}()

	require.NoError(t, ActivateRunning(name))
	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}

	require.NoError(t, guard.Release())
	assert.NoError(t, guard.Release())
	select {
	case <-served:
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after release")
	}
}
