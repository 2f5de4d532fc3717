package chat

import "time"

// Message is one chat history entry. JSON names match the dashboard client's
// stored history format.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Avatar    string    `json:"avatar"`
}

const (
	SenderUser = "user"
	SenderBot  = "bot"

	userAvatar = "\U0001F464"
	botAvatar  = "\U0001F916"
)

// QuickAction is a one-tap suggestion the client renders under the input box.
type QuickAction struct {
	Icon  string `json:"icon"`
	Text  string `json:"text"`
	Query string `json:"query"`
}

var quickActions = []QuickAction{
	{Icon: "e-filter", Text: "Show active wells", Query: "Show me all active wells"},
	{Icon: "e-warning", Text: "Critical alerts", Query: "What are the critical alerts?"},
	{Icon: "e-performance", Text: "Top performers", Query: "Which wells have the best efficiency?"},
	{Icon: "e-export", Text: "Export report", Query: "Export today's production report"},
}

const (
	welcomeText = "Hello! I'm your AI assistant for oil field operations. I can help you analyze data, generate reports, and answer questions about your wells. How can I help you today?"
	clearedText = "Chat cleared. How can I help you?"
	errorText   = "Sorry, I encountered an error. Please try again."
)
