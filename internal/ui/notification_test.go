package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindDisplayUser(t *testing.T) {
	// GIVEN
	output := "root     tty1         2026-10-17 08:12\n" +
		"operator :0           2026-10-17 08:15 (:0)\n"

	// WHEN
	user := findDisplayUser(output, ":0")

	// THEN
	assert.Equal(t, "operator", user)
}

func TestFindDisplayUser_NoMatch(t *testing.T) {
	// GIVEN
	output := "root     tty1         2026-10-17 08:12\n"

	// WHEN
	user := findDisplayUser(output, ":1")

	// THEN
	assert.Empty(t, user)
}

func TestNotifySend_MissingDisplay(t *testing.T) {
	// GIVEN
	t.Setenv("DISPLAY", "")

	// WHEN
	err := NewDesktopNotifier("plant2go").Send("pressure out of range")

	// THEN
	assert.ErrorIs(t, err, ErrNoDisplaySession)
}

func TestFindDisplayUser_IgnoresLoginTime(t *testing.T) {
	// GIVEN
	output := "root     tty1         2026-10-17 08:12\n" +
		"operator :1           2026-10-17 08:15 (:1)\n"

	// WHEN
	user := findDisplayUser(output, ":1")

	// THEN
	assert.Equal(t, "operator", user)
}

func TestFindDisplayUser_RemoteHost(t *testing.T) {
	// GIVEN
	output := "root     tty1         2026-10-17 08:12\n" +
		"operator pts/0        2026-10-17 08:15 (:0)\n"

	// WHEN
	user := findDisplayUser(output, ":0")

	// THEN
	assert.Equal(t, "operator", user)
}
