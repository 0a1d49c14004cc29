package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// ErrServiceUnavailable wraps any transport or upstream failure from the
// external AI services. Callers decide whether the failure is fatal for the
// enclosing request.
var ErrServiceUnavailable = errors.New("ml service unavailable")

// Match is one vector-search hit. Distance is a dissimilarity score:
// 0 means identical, larger means less similar, unbounded above.
type Match struct {
	ID       string  `json:"id"`
	Distance float64 `json:"distance"`
	Text     string  `json:"text,omitempty"`
}

// Page is one OCR-extracted page.
type Page struct {
	PageNumber int    `json:"page_number"`
	Content    string `json:"content"`
}

// Question is one generated quiz question.
type Question struct {
	Question      string   `json:"question"`
	AnswerChoices []string `json:"answer_choices"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Client talks to the external AI microservices: vector search, OCR,
// personality prediction, emotion detection and question generation. All
// endpoints live under one base URL.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// IndexJob registers a job's text in the vector-search index.
func (c *Client) IndexJob(ctx context.Context, jobID, jobText string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"job_id": jobID, "job_text": jobText}).
		Post("/vectorsearch/jobs/")
	return c.check(resp, err, "index job")
}

// SearchJobs runs a nearest-neighbor query over indexed jobs.
func (c *Client) SearchJobs(ctx context.Context, queryText string, nResults int) ([]Match, error) {
	return c.search(ctx, "/vectorsearch/jobs/search/", queryText, nResults)
}

// DeleteJob removes a job from the vector-search index.
func (c *Client) DeleteJob(ctx context.Context, jobID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/vectorsearch/jobs/" + jobID)
	return c.check(resp, err, "delete job")
}

// IndexResume registers a resume's text in the vector-search index.
func (c *Client) IndexResume(ctx context.Context, resumeID, resumeText string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"resume_id": resumeID, "resume_text": resumeText}).
		Post("/vectorsearch/resumes/")
	return c.check(resp, err, "index resume")
}

// SearchResumes runs a nearest-neighbor query over indexed resumes.
func (c *Client) SearchResumes(ctx context.Context, queryText string, nResults int) ([]Match, error) {
	return c.search(ctx, "/vectorsearch/resumes/search/", queryText, nResults)
}

// DeleteResume removes a resume from the vector-search index.
func (c *Client) DeleteResume(ctx context.Context, resumeID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/vectorsearch/resumes/" + resumeID)
	if err := c.check(resp, err, "delete resume"); err != nil {
		return err
	}
	// The service acks deletion in a message field rather than a status code.
	msg := gjson.GetBytes(resp.Body(), "message").String()
	if !strings.Contains(msg, "deleted successfully") {
		return fmt.Errorf("%w: delete resume: unexpected response %q", ErrServiceUnavailable, msg)
	}
	return nil
}

// ExtractPDF sends a CV file to the OCR service and returns its pages,
// grouped per document part as the service reports them.
func (c *Client) ExtractPDF(ctx context.Context, filename string, file []byte) ([][]Page, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(file)).
		Post("/pdfreader/ocr_only")
	if err := c.check(resp, err, "ocr"); err != nil {
		return nil, err
	}

	content := gjson.GetBytes(resp.Body(), "content")
	if !content.Exists() {
		return nil, fmt.Errorf("%w: ocr: response has no content", ErrServiceUnavailable)
	}

	var pages [][]Page
	if err := json.Unmarshal([]byte(content.Raw), &pages); err != nil {
		return nil, fmt.Errorf("%w: ocr: %v", ErrServiceUnavailable, err)
	}
	return pages, nil
}

// PredictPersonality scores a free-text answer against personality traits.
func (c *Client) PredictPersonality(ctx context.Context, sentence string) (map[string]string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"sentence": sentence}).
		Post("/personality/predict-personality")
	if err := c.check(resp, err, "personality"); err != nil {
		return nil, err
	}

	traits := make(map[string]string)
	gjson.ParseBytes(resp.Body()).ForEach(func(key, value gjson.Result) bool {
		traits[key.String()] = value.String()
		return true
	})
	if len(traits) == 0 {
		return nil, fmt.Errorf("%w: personality: empty prediction", ErrServiceUnavailable)
	}
	return traits, nil
}

// PredictEmotion scores an interview video (by its stored URL) against
// emotion classes.
func (c *Client) PredictEmotion(ctx context.Context, videoURL string) (map[string]float64, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"s3_link": videoURL}).
		Post("/emotion/predict-emotion")
	if err := c.check(resp, err, "emotion"); err != nil {
		return nil, err
	}

	var levels map[string]float64
	if err := json.Unmarshal(resp.Body(), &levels); err != nil {
		return nil, fmt.Errorf("%w: emotion: %v", ErrServiceUnavailable, err)
	}
	return levels, nil
}

// GenerateQuestions fetches quiz questions for a topic at a difficulty
// matching the user's learning type.
func (c *Client) GenerateQuestions(ctx context.Context, topic, difficultyLevel string) ([]Question, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"topic": topic, "difficulty_level": difficultyLevel}).
		Post("/questions/get-questions")
	if err := c.check(resp, err, "questions"); err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(resp.Body(), &questions); err != nil {
		return nil, fmt.Errorf("%w: questions: %v", ErrServiceUnavailable, err)
	}
	return questions, nil
}

func (c *Client) search(ctx context.Context, path, queryText string, nResults int) ([]Match, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"query_text": queryText, "n_results": nResults}).
		Post(path)
	if err := c.check(resp, err, "vector search"); err != nil {
		return nil, err
	}

	var matches []Match
	if err := json.Unmarshal(resp.Body(), &matches); err != nil {
		return nil, fmt.Errorf("%w: vector search: %v", ErrServiceUnavailable, err)
	}
	return matches, nil
}

func (c *Client) check(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrServiceUnavailable, op, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %s: status %d", ErrServiceUnavailable, op, resp.StatusCode())
	}
	return nil
}
