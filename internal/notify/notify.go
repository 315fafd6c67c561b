package notify

import (
	"os/exec"
	"strconv"
	"time"
)

// Urgency levels for notifications
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
	Timeout time.Duration
	Icon    string // Optional icon name
}

// Runner executes the notification command. Tests replace it.
type Runner func(name string, args ...string) error

func execRunner(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// Notifier handles sending desktop notifications
type Notifier struct {
	enabled bool
	run     Runner
}

// NewNotifier creates a notifier. Disabled notifiers send nothing.
func NewNotifier(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		run:     execRunner,
	}
}

// WithRunner replaces the command runner.
func (n *Notifier) WithRunner(r Runner) *Notifier {
	n.run = r
	return n
}

// IsEnabled returns whether notifications are enabled
func (n *Notifier) IsEnabled() bool {
	return n != nil && n.enabled
}

// Args builds the notify-send argument list.
func Args(notification Notification) []string {
	args := []string{}

	switch notification.Urgency {
	case UrgencyLow:
		args = append(args, "-u", "low")
	case UrgencyCritical:
		args = append(args, "-u", "critical")
	default:
		args = append(args, "-u", "normal")
	}

	// Timeout is in milliseconds
	if notification.Timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(notification.Timeout.Milliseconds())))
	}

	if notification.Icon != "" {
		args = append(args, "-i", notification.Icon)
	}

	args = append(args, "-a", "goalboard", notification.Title)
	if notification.Body != "" {
		args = append(args, notification.Body)
	}
	return args
}

// Send sends a desktop notification using notify-send
func (n *Notifier) Send(notification Notification) error {
	if !n.IsEnabled() {
		return nil
	}
	return n.run("notify-send", Args(notification)...)
}

// SendGoalComplete announces a completed goal under its category label.
func (n *Notifier) SendGoalComplete(goalText, categoryLabel string) error {
	return n.Send(Notification{
		Title:   "Goal achieved!",
		Body:    goalText + " (" + categoryLabel + ")",
		Urgency: UrgencyNormal,
		Timeout: 8 * time.Second,
		Icon:    "emblem-default-symbolic",
	})
}
