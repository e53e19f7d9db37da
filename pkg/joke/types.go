package joke

const (
	// Language is the only locale the generation endpoint is asked for.
	Language = "english"
	// GeneratePath is the generation endpoint, relative to the base URL.
	GeneratePath = "/api/generate"
	// HealthPath is the service root that reports liveness.
	HealthPath = "/"
)

// Request is the JSON body sent to the generation endpoint. A new value is
// built for every submission.
type Request struct {
	Topic    string `json:"topic" yaml:"topic"`
	Tone     string `json:"tone" yaml:"tone"`
	Language string `json:"language" yaml:"language"`
}

// NewRequest builds a Request for the fixed language. Topic and tone are
// forwarded verbatim, empty strings included.
func NewRequest(topic, tone string) Request {
	return Request{
		Topic:    topic,
		Tone:     tone,
		Language: Language,
	}
}

// Response is the structured joke returned on success.
type Response struct {
	Setup       string `json:"setup"`
	Punchline   string `json:"punchline"`
	Explanation string `json:"explanation,omitempty"`
}

// HasExplanation reports whether the optional explanation should be shown.
func (r Response) HasExplanation() bool {
	return r.Explanation != ""
}

// Health is the payload served by the service root.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// OK reports whether the service declared itself healthy.
func (h Health) OK() bool {
	return h.Status == "ok"
}
