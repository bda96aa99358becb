package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged         EventType = "QueryChanged"
	EventVoiceStarted         EventType = "VoiceStarted"
	EventVoiceCancelled       EventType = "VoiceCancelled"
	EventVoiceResulted        EventType = "VoiceResulted"
	EventVoiceFailed          EventType = "VoiceFailed"
	EventImagePicked          EventType = "ImagePicked"
	EventImageSearchCompleted EventType = "ImageSearchCompleted"
	EventError                EventType = "Error"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted whenever the search query is recomputed
type QueryChangedEvent struct {
	Query   string
	Visible int // number of feed items left after filtering
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// VoiceStartedEvent is emitted when a capture attempt begins
type VoiceStartedEvent struct {
	Attempt uint64
}

func (e VoiceStartedEvent) Type() EventType { return EventVoiceStarted }

// VoiceCancelledEvent is emitted when the user abandons a capture attempt
type VoiceCancelledEvent struct {
	Attempt uint64
}

func (e VoiceCancelledEvent) Type() EventType { return EventVoiceCancelled }

// VoiceResultedEvent is emitted when a capture attempt produced text
type VoiceResultedEvent struct {
	Attempt uint64
	Text    string
}

func (e VoiceResultedEvent) Type() EventType { return EventVoiceResulted }

// VoiceFailedEvent is emitted when recognition failed
type VoiceFailedEvent struct {
	Attempt uint64
	Reason  string
	Err     error
}

func (e VoiceFailedEvent) Type() EventType { return EventVoiceFailed }

// ImagePickedEvent is emitted when the picker returned an image
type ImagePickedEvent struct {
	Image ImageRef
}

func (e ImagePickedEvent) Type() EventType { return EventImagePicked }

// ImageSearchCompletedEvent is emitted when product results are available
type ImageSearchCompletedEvent struct {
	ImageID string
	Results int
}

func (e ImageSearchCompletedEvent) Type() EventType { return EventImageSearchCompleted }

// ErrorEvent is emitted when a collaborator fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
