package alerts

// maxListPages bounds List against a service that never stops paging.
const maxListPages = 50

// Operation names used for metrics, spans and errors.
const (
	opList      = "list"
	opCreate    = "create"
	opGet       = "get"
	opPause     = "pause"
	opResume    = "resume"
	opDelete    = "delete"
	opDeleteAll = "delete_all"
)

// ---- Request/Response types scoped to this package ----

// CreateTimerRequest is the body for POST /v1/alerts/timers.
type CreateTimerRequest struct {
	Duration           string             `json:"duration"`
	TimerLabel         string             `json:"timerLabel,omitempty"`
	CreationBehavior   CreationBehavior   `json:"creationBehavior"`
	TriggeringBehavior TriggeringBehavior `json:"triggeringBehavior"`
}

type CreationBehavior struct {
	DisplayExperience DisplayExperience `json:"displayExperience"`
}

type DisplayExperience struct {
	Visibility string `json:"visibility"`
}

type TriggeringBehavior struct {
	Operation          Operation          `json:"operation"`
	NotificationConfig NotificationConfig `json:"notificationConfig"`
}

type Operation struct {
	Type           string           `json:"type"`
	TextToAnnounce []TextToAnnounce `json:"textToAnnounce,omitempty"`
}

type TextToAnnounce struct {
	Locale string `json:"locale"`
	Text   string `json:"text"`
}

type NotificationConfig struct {
	PlayAudible bool `json:"playAudible"`
}

// TimerResponse is the timer API's timer object.
type TimerResponse struct {
	ID                      string `json:"id"`
	Status                  string `json:"status"`
	Duration                string `json:"duration"`
	TriggerTime             string `json:"triggerTime,omitempty"`
	TimerLabel              string `json:"timerLabel,omitempty"`
	CreatedTime             string `json:"createdTime,omitempty"`
	UpdatedTime             string `json:"updatedTime,omitempty"`
	RemainingTimeWhenPaused string `json:"remainingTimeWhenPaused,omitempty"`
}

// TimersList is the body of GET /v1/alerts/timers.
type TimersList struct {
	TotalCount int             `json:"totalCount"`
	Timers     []TimerResponse `json:"timers"`
	NextToken  string          `json:"nextToken,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Visibility and operation constants of the create payload.
const (
	VisibilityVisible = "VISIBLE"
	VisibilityHidden  = "HIDDEN"
	OperationAnnounce = "ANNOUNCE"
)
