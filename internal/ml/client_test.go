package ml

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestSearchResumes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vectorsearch/resumes/search/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"r1","distance":0.0},{"id":"r2","distance":1.5}]`))
	})

	matches, err := c.SearchResumes(context.Background(), "golang backend", 10)
	if err != nil {
		t.Fatalf("SearchResumes: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].ID != "r1" || matches[0].Distance != 0 {
		t.Fatalf("first match = %+v", matches[0])
	}
	if matches[1].Distance != 1.5 {
		t.Fatalf("second distance = %v, want 1.5", matches[1].Distance)
	}
}

func TestSearchJobsUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.SearchJobs(context.Background(), "query", 5)
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("err = %v, want ErrServiceUnavailable", err)
	}
}

func TestDeleteResume(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"acked", `{"message":"Resume deleted successfully"}`, false},
		{"wrong ack", `{"message":"nothing to delete"}`, true},
		{"no message", `{}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("unexpected method %s", r.Method)
				}
				if r.URL.Path != "/vectorsearch/resumes/abc" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tc.body))
			})

			err := c.DeleteResume(context.Background(), "abc")
			if tc.wantErr && !errors.Is(err, ErrServiceUnavailable) {
				t.Fatalf("err = %v, want ErrServiceUnavailable", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("DeleteResume: %v", err)
			}
		})
	}
}

func TestExtractPDF(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("not multipart: %v", err)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("file part missing: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[[{"page_number":1,"content":"hello"},{"page_number":2,"content":"world"}]]}`))
	})

	pages, err := c.ExtractPDF(context.Background(), "cv.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("ExtractPDF: %v", err)
	}
	if len(pages) != 1 || len(pages[0]) != 2 {
		t.Fatalf("pages = %+v", pages)
	}
	if pages[0][0].Content != "hello" || pages[0][1].PageNumber != 2 {
		t.Fatalf("pages = %+v", pages)
	}
}

func TestPredictEmotion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"happy":0.7,"neutral":0.2,"sad":0.1}`))
	})

	levels, err := c.PredictEmotion(context.Background(), "https://store.example/video.mp4")
	if err != nil {
		t.Fatalf("PredictEmotion: %v", err)
	}
	if levels["happy"] != 0.7 {
		t.Fatalf("levels = %v", levels)
	}
}

func TestGenerateQuestions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"question":"What is a goroutine?","answer_choices":["a","b","c","d"],"correct_answer":"a","explanation":"lightweight thread"}]`))
	})

	qs, err := c.GenerateQuestions(context.Background(), "golang", "hard")
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}
	if len(qs) != 1 || qs[0].CorrectAnswer != "a" || len(qs[0].AnswerChoices) != 4 {
		t.Fatalf("questions = %+v", qs)
	}
}
