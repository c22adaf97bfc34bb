package push

// Display contract of a push notification as the client shows it.
const (
	DefaultTitle = "SUPER COPA FF"
	DefaultBody  = "Nova atualização disponível!"

	iconPath  = "/icon.svg"
	badgePath = "/icon.svg"

	// TagBroadcast deduplicates general pushes: a second push replaces the
	// first instead of stacking.
	TagBroadcast = "super-copa-notification"
	// TagTest marks admin test sends.
	TagTest = "super-copa-test"
)

// DisplayNotification is the payload forwarded to connected clients.
type DisplayNotification struct {
	Title              string `json:"title"`
	Body               string `json:"body"`
	Icon               string `json:"icon"`
	Badge              string `json:"badge"`
	Vibrate            []int  `json:"vibrate,omitempty"`
	Tag                string `json:"tag"`
	RequireInteraction bool   `json:"require_interaction"`
}

// NewBroadcast builds a general push. Empty title or body fall back to the
// fixed defaults.
func NewBroadcast(title, body string) DisplayNotification {
	if title == "" {
		title = DefaultTitle
	}
	if body == "" {
		body = DefaultBody
	}
	return DisplayNotification{
		Title:   title,
		Body:    body,
		Icon:    iconPath,
		Badge:   badgePath,
		Vibrate: []int{200, 100, 200},
		Tag:     TagBroadcast,
	}
}

// NewTest builds an admin test send. Same assets, test tag, no vibration.
func NewTest(title, body string) DisplayNotification {
	if title == "" {
		title = DefaultTitle
	}
	return DisplayNotification{
		Title: title,
		Body:  body,
		Icon:  iconPath,
		Badge: badgePath,
		Tag:   TagTest,
	}
}
