package models

// AssistantMessageRequest is the request body for POST /v1/assistant/messages.
type AssistantMessageRequest struct {
	Message string `json:"message"`
}

// AssistantMessageResponse is the canned reply to an assistant message.
type AssistantMessageResponse struct {
	Reply string `json:"reply"`
}
