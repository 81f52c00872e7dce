package session

// Info is returned when the chat UI opens a session.
type Info struct {
	Name        string `json:"name"`
	Session     string `json:"session"`
	MultiTurn   bool   `json:"multiTurn"`
	FileSupport bool   `json:"fileSupport"`
}

// Settings describe the bot advertised to every session.
type Settings struct {
	BotName     string
	MultiTurn   bool
	FileSupport bool
}
