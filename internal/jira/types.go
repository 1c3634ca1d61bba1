package jira

import "github.com/mauv0809/qa-pulse/internal/rest"

// APIClient talks to the Jira Cloud REST API v2 using basic auth.
type APIClient struct {
	api     *rest.Client
	BaseURL string
}

type IssueType string

const (
	IssueTypeTask IssueType = "10002"
)

type Priority string

const (
	PriorityHighest Priority = "10003"
	PriorityHigh    Priority = "2"
	PriorityMedium  Priority = "3"
	PriorityLow     Priority = "4"
	PriorityLowest  Priority = "10002"
)

type LinkType string

const (
	LinkTypeBlocks LinkType = "10000"
)

// TransitionStatus identifies a workflow transition, not a status.
type TransitionStatus string

const (
	TransitionDevelopmentBlocked TransitionStatus = "191"
	TransitionDone               TransitionStatus = "181"
)

type StatusCategoryID int

const (
	StatusCategoryToDo       StatusCategoryID = 2
	StatusCategoryDone       StatusCategoryID = 3
	StatusCategoryInProgress StatusCategoryID = 4
)

func (c StatusCategoryID) String() string {
	switch c {
	case StatusCategoryToDo:
		return "TO_DO"
	case StatusCategoryInProgress:
		return "IN_PROGRESS"
	case StatusCategoryDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// Status ids of the project workflow.
const (
	StatusToDo               = "10000"
	StatusInProgress         = "3"
	StatusReview             = "10118"
	StatusDone               = "10001"
	StatusDevelopmentBlocked = "10160"
)

type CustomField string

const (
	CustomFieldStoryPoints CustomField = "customfield_10021"
	CustomFieldTestCaseKey CustomField = "customfield_10341"
)

// SearchParams is the body of POST /rest/api/2/search.
type SearchParams struct {
	JQL        string   `json:"jql"`
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
	Fields     []string `json:"fields,omitempty"`
}

type SearchResponse struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self"`
	Fields IssueFields `json:"fields"`
}

type IssueFields struct {
	Summary                  string   `json:"summary"`
	Status                   Status   `json:"status"`
	DueDate                  *string  `json:"duedate"`
	StatusCategoryChangeDate string   `json:"statuscategorychangedate"`
	Labels                   []string `json:"labels"`
}

type Status struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	StatusCategory StatusCategory `json:"statusCategory"`
}

type StatusCategory struct {
	ID   StatusCategoryID `json:"id"`
	Key  string           `json:"key"`
	Name string           `json:"name"`
}

type ChangelogPage struct {
	StartAt    int              `json:"startAt"`
	MaxResults int              `json:"maxResults"`
	Total      int              `json:"total"`
	IsLast     bool             `json:"isLast"`
	Values     []ChangelogEntry `json:"values"`
}

type ChangelogEntry struct {
	ID      string       `json:"id"`
	Created string       `json:"created"`
	Items   []ChangeItem `json:"items"`
}

type ChangeItem struct {
	Field      string `json:"field"`
	FieldType  string `json:"fieldtype"`
	From       string `json:"from"`
	FromString string `json:"fromString"`
	To         string `json:"to"`
	ToString   string `json:"toString"`
}

type CreateIssueParams struct {
	ProjectKey   string
	IssueType    IssueType
	Summary      string
	Description  string
	Labels       []string
	AssigneeID   string
	Priority     Priority
	CustomFields map[CustomField]any
}

type CreatedIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// EditIssueParams holds the fields to change; empty values are left untouched.
type EditIssueParams struct {
	Summary     string
	Description string
}

type Transition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	To   Status `json:"to"`
}

type Watchers struct {
	IsWatching bool   `json:"isWatching"`
	WatchCount int    `json:"watchCount"`
	Watchers   []User `json:"watchers"`
}

type User struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
}
