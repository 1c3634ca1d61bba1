package qase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/qa-pulse/internal/paginate"
	"github.com/mauv0809/qa-pulse/internal/rest"
)

const casePageSize = 100

// NewClient creates a Qase client for projectCode authenticating with apiToken.
func NewClient(baseURL, apiToken, projectCode string) *APIClient {
	return &APIClient{
		api: rest.NewClient("qase", baseURL, func(req *http.Request) {
			req.Header.Set("Token", apiToken)
		}),
		ProjectCode: projectCode,
	}
}

// Ensure APIClient implements the QaseClient interface.
var _ QaseClient = (*APIClient)(nil)

// ListTestCases returns one page of test cases matching filter.
func (c *APIClient) ListTestCases(ctx context.Context, filter Filter, limit, offset int) (CaseList, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Automation != "" {
		query.Set("automation", filter.Automation)
	}

	log.Debug("Listing test cases", "project", c.ProjectCode, "filter", filter, "limit", limit, "offset", offset)
	var resp envelope[CaseList]
	if err := c.api.Get(ctx, "/v1/case/"+url.PathEscape(c.ProjectCode), query, &resp); err != nil {
		return CaseList{}, err
	}
	return resp.Result, nil
}

// CountTestCases returns how many test cases match filter.
func (c *APIClient) CountTestCases(ctx context.Context, filter Filter) (int, error) {
	list, err := c.ListTestCases(ctx, filter, 1, 0)
	if err != nil {
		return 0, err
	}
	return list.Filtered, nil
}

// GetAllTestCases fetches every test case matching filter, 100 per page.
func (c *APIClient) GetAllTestCases(ctx context.Context, filter Filter) ([]TestCase, error) {
	cases, err := paginate.All(ctx, casePageSize,
		func(ctx context.Context) (int, error) {
			return c.CountTestCases(ctx, filter)
		},
		func(ctx context.Context, offset, limit int) ([]TestCase, error) {
			list, err := c.ListTestCases(ctx, filter, limit, offset)
			if err != nil {
				return nil, err
			}
			return list.Entities, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching test cases for %s: %w", c.ProjectCode, err)
	}
	log.Info("Fetched all test cases", "project", c.ProjectCode, "filter", filter, "count", len(cases))
	return cases, nil
}

func (c *APIClient) GetTestCase(ctx context.Context, id int) (TestCase, error) {
	var resp envelope[TestCase]
	if err := c.api.Get(ctx, c.casePath(id), nil, &resp); err != nil {
		return TestCase{}, err
	}
	return resp.Result, nil
}

// UpdateTestCase patches the given custom field values of a test case.
func (c *APIClient) UpdateTestCase(ctx context.Context, id int, fields map[CustomField]string) error {
	log.Info("Updating test case", "project", c.ProjectCode, "id", id)
	payload := map[string]any{}
	if len(fields) > 0 {
		customFields := make(map[string]string, len(fields))
		for field, value := range fields {
			customFields[field.String()] = value
		}
		payload["custom_field"] = customFields
	}
	return c.api.Patch(ctx, c.casePath(id), payload, nil)
}

// TestCaseURL returns the web link of a test case in the Qase app.
func (c *APIClient) TestCaseURL(appURL string, id int) string {
	return CaseURL(appURL, c.ProjectCode, id)
}

func CaseURL(appURL, projectCode string, id int) string {
	return fmt.Sprintf("%s/case/%s-%d", strings.TrimRight(appURL, "/"), projectCode, id)
}

func (c *APIClient) casePath(id int) string {
	return "/v1/case/" + url.PathEscape(c.ProjectCode) + "/" + strconv.Itoa(id)
}
