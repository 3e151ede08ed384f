package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"

	ChatSessionDefaultTitle = "Unnamed research session"
	ChatGreetingMessage     = "Hi, which case are you researching today?"
)
