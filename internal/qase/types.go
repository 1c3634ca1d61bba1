package qase

import (
	"strconv"

	"github.com/mauv0809/qa-pulse/internal/rest"
)

// APIClient talks to the Qase REST API v1 for a single project.
type APIClient struct {
	api         *rest.Client
	ProjectCode string
}

// CustomField is the project-specific numeric id of a Qase custom field.
type CustomField int

const (
	// CustomFieldAutomationTask holds the browse URL of the Jira task automating the test.
	CustomFieldAutomationTask CustomField = 5
	// CustomFieldManualExecutionTime holds the manual run time in minutes.
	CustomFieldManualExecutionTime CustomField = 6
)

// Value returns the field's value on tc, or "" when the test case does not carry it.
func (f CustomField) Value(tc TestCase) string {
	for _, cf := range tc.CustomFields {
		if cf.ID == int(f) {
			return cf.Value
		}
	}
	return ""
}

func (f CustomField) String() string {
	return strconv.Itoa(int(f))
}

type AutomationStatus int

const (
	AutomationManual    AutomationStatus = 0
	AutomationAutomated AutomationStatus = 2
)

// Filter values passed to the case search endpoint.
const (
	TypeSmoke                 = "smoke"
	StatusActual              = "actual"
	AutomationFilterAutomated = "automated"
	AutomationFilterManual    = "is-not-automated,to-be-automated"
)

// Filter narrows a test case search. Empty values are not sent.
type Filter struct {
	Type       string
	Status     string
	Automation string
}

type TestCase struct {
	ID           int                `json:"id"`
	Title        string             `json:"title"`
	Type         int                `json:"type"`
	Status       int                `json:"status"`
	Automation   AutomationStatus   `json:"automation"`
	CustomFields []CustomFieldValue `json:"custom_fields"`
}

type CustomFieldValue struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

type CaseList struct {
	Total    int        `json:"total"`
	Filtered int        `json:"filtered"`
	Count    int        `json:"count"`
	Entities []TestCase `json:"entities"`
}

type envelope[T any] struct {
	Status bool `json:"status"`
	Result T    `json:"result"`
}
