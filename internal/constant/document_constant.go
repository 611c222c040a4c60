package constant

const (
	ConversationRoleUser      = "user"
	ConversationRoleAssistant = "assistant"

	// Watermill topic carrying document update events to the in-process
	// consumer (progress push, monitoring counters).
	DocumentUpdatedTopic = "DOCUMENT_UPDATED"

	// Operations tagged on document update events.
	OperationSetValues      = "set_values"
	OperationAddListItem    = "add_list_item"
	OperationRemoveListItem = "remove_list_item"
)
