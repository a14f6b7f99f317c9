package ent

const (
	FiringEmoji   = "❗️"
	ResolvedEmoji = "✅"

	BroadcastMarker = "@channel"
	DefaultColor    = "#808080"
)

// StateColors maps an upper-cased Icinga state to its attachment color.
var StateColors = map[string]string{
	"OK":       "#00FF00",
	"WARNING":  "#FFA500",
	"CRITICAL": "#FF0000",
	"UNKNOWN":  "#800080",
	"UP":       "#00FF00",
	"DOWN":     "#FF0000",
}

// AlertFields is one Icinga notification as passed on the command line.
type AlertFields struct {
	DateTime         string
	HostName         string
	HostDisplayName  string
	Output           string
	State            string
	NotificationType string

	UserEmail          string
	HostAddress        string
	HostAddress6       string
	HostNotes          string
	ServiceNotes       string
	Author             string
	Comment            string
	IcingaURL          string
	ServiceName        string
	ServiceDisplayName string
}

// IsService reports whether the alert is about a service rather than a host.
func (a AlertFields) IsService() bool {
	return a.ServiceName != ""
}

type Attachment struct {
	Color string `json:"color"`
	Text  string `json:"text"`
}

// MessagePayload is the formatted notification. Message holds the optional
// top-level text, which is the broadcast marker for non-healthy states.
type MessagePayload struct {
	Message    string     `json:"message,omitempty"`
	Attachment Attachment `json:"attachment"`
}

func (p MessagePayload) IsBroadcast() bool {
	return p.Message == BroadcastMarker
}
