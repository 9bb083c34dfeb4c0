package bot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAdmin(t *testing.T) {
	b := &Bot{adminID: 42}
	require.True(t, b.isAdmin(42))
	require.False(t, b.isAdmin(7))

	// Without a configured admin id nobody is an administrator, not even
	// a sender whose id happens to be the zero value.
	unconfigured := &Bot{}
	require.False(t, unconfigured.isAdmin(0))
	require.False(t, unconfigured.isAdmin(42))
}

func TestAdminOnlyInputs(t *testing.T) {
	for _, cmd := range []string{cmdAdmin, cmdUsers, cmdStats, cmdLogs} {
		require.True(t, adminOnly(inputCommand, cmd), "command %q", cmd)
	}
	for _, cmd := range []string{cmdStart, cmdHelp, cmdStop, cmdTasks, cmdResults, cmdMyID, cmdPing} {
		require.False(t, adminOnly(inputCommand, cmd), "command %q", cmd)
	}

	for _, label := range []string{btnAdminStats, btnAdminUsers, btnAdminLogs} {
		require.True(t, adminOnly(inputMenu, label), "label %q", label)
	}
	for _, label := range []string{btnReference, btnTasks, btnResults, btnAbout, btnHelp, btnBack} {
		require.False(t, adminOnly(inputMenu, label), "label %q", label)
	}

	require.False(t, adminOnly(inputTopic, "Информатика"))
	require.False(t, adminOnly(inputText, "8"))
}

// Admin views are gated once at dispatch: any admin-only input from a
// non-admin sender must take the unrecognized path before a handler runs.
func TestAdminViewsBlockedForNonAdmins(t *testing.T) {
	b := &Bot{adminID: 42}

	for _, in := range []string{"/stats", "/users", "/logs", "/admin", btnAdminStats, btnAdminUsers, btnAdminLogs} {
		kind, payload := classify(in)
		require.True(t, adminOnly(kind, payload) && !b.isAdmin(7), "input %q must be rejected for a non-admin", in)
		require.False(t, adminOnly(kind, payload) && !b.isAdmin(42), "input %q must pass for the admin", in)
	}
}
