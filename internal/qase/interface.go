package qase

import "context"

// QaseClient defines the interface for interacting with the Qase API.
// This allows for mock implementations to be used in tests.
type QaseClient interface {
	ListTestCases(ctx context.Context, filter Filter, limit, offset int) (CaseList, error)
	CountTestCases(ctx context.Context, filter Filter) (int, error)
	GetAllTestCases(ctx context.Context, filter Filter) ([]TestCase, error)
	GetTestCase(ctx context.Context, id int) (TestCase, error)
	UpdateTestCase(ctx context.Context, id int, fields map[CustomField]string) error
	TestCaseURL(appURL string, id int) string
}
