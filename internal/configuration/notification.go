package configuration

type NotificationConfig struct {
	// Console prints notifications as warnings
	Console bool `json:"console"`
	// Desktop sends notifications using notify-send
	Desktop bool `json:"desktop"`
}
