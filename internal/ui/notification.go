package ui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// For a list of possible icons, see: https://specifications.freedesktop.org/icon-naming-spec/icon-naming-spec-latest.html
const (
	IconDialogError = "dialog-error"
	IconDialogInfo  = "dialog-information"
	IconDialogWarn  = "dialog-warning"

	UrgencyLow      = "low"
	UrgencyNormal   = "normal"
	UrgencyCritical = "critical"

	appName = "plant2go"
)

var ErrNoDisplaySession = errors.New("no display session found")

// DesktopNotifier delivers messages as desktop notifications using "notify-send"
// on behalf of the user owning the current display session.
type DesktopNotifier struct {
	Title   string
	Urgency string
	Icon    string
}

func NewDesktopNotifier(title string) *DesktopNotifier {
	return &DesktopNotifier{
		Title:   title,
		Urgency: UrgencyCritical,
		Icon:    IconDialogWarn,
	}
}

func (n *DesktopNotifier) Send(message string) error {
	return NotifySend(n.Urgency, n.Title, message, n.Icon)
}

func NotifyError(title, text string) {
	logNotificationError(NotifySend(UrgencyCritical, title, text, IconDialogError))
}

// ErrorAndNotify prints the error to the console and also sends a desktop notification
func ErrorAndNotify(title, format string, a ...interface{}) {
	text := fmt.Sprintf(format, a...)
	Error("%s: %s", title, text)
	NotifyError(title, text)
}

func logNotificationError(err error) {
	if err != nil {
		Warning("Cannot send notification: %v", err)
	}
}

func NotifySend(urgency, title, text, icon string) error {
	display, exists := os.LookupEnv("DISPLAY")
	if !exists || len(display) <= 0 {
		return fmt.Errorf("%w: missing env variable 'DISPLAY'", ErrNoDisplaySession)
	}

	cmd := exec.Command("who")
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("unable to find user of display session: %w", err)
	}
	user := findDisplayUser(string(output), display)
	if len(user) <= 0 {
		return fmt.Errorf("%w: unable to detect user of display %s", ErrNoDisplaySession, display)
	}

	cmd = exec.Command("id", "-u", user)
	output, err = cmd.Output()
	userIdString := strings.TrimSpace(string(output))
	if err != nil || len(userIdString) <= 0 {
		return fmt.Errorf("unable to detect user id of %s: %v", user, err)
	}

	cmd = exec.Command("sudo", "-u", user,
		"DISPLAY="+display,
		"DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/"+userIdString+"/bus",
		"notify-send",
		"-a", appName,
		"-u", urgency,
		"-i", icon,
		title, text,
	)
	if err = cmd.Run(); err != nil {
		return fmt.Errorf("error sending notification: %w", err)
	}
	return nil
}

// findDisplayUser extracts the user name of the "who" output line whose
// terminal or remote host is the given display
func findDisplayUser(whoOutput string, display string) string {
	lines := strings.Split(whoOutput, "\n")
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if fields[1] == display || fields[len(fields)-1] == "("+display+")" {
			return fields[0]
		}
	}
	return ""
}
