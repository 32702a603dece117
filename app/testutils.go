package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sushihentaime/newshub/internal/articleservice"
	"github.com/sushihentaime/newshub/internal/common"
	"github.com/sushihentaime/newshub/internal/topicservice"
	"github.com/sushihentaime/newshub/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	if len(responseBody) == 0 {
		return res.StatusCode, res.Header, nil
	}

	var envelope envelope
	err = json.Unmarshal(responseBody, &envelope)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, envelope
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../migrations", t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	cfg := &Config{
		Port:        ":0",
		Environment: "test",
		Version:     "test",
	}

	app := &application{
		config:         cfg,
		logger:         logger,
		articleService: articleservice.NewArticleService(db),
		topicService:   topicservice.NewTopicService(db),
		userService:    userservice.NewUserService(db),
	}

	return app, db
}

// seedTestData loads a small fixed dataset: four users, three topics,
// thirteen articles, and five comments concentrated on the early articles.
// Article 5 ends up with two comments, article 2 with none, and article 5 is
// the only one under the cats topic.
func seedTestData(t *testing.T, db *sql.DB) {
	t.Helper()

	stmts := []string{
		`INSERT INTO users (username, name, avatar_url) VALUES
			('butter_bridge', 'jonny', 'https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg'),
			('icellusedkars', 'sam', 'https://avatars2.githubusercontent.com/u/24604688?s=460&v=4'),
			('rogersop', 'paul', 'https://avatars2.githubusercontent.com/u/24394918?s=400&v=4'),
			('lurker', 'do_nothing', 'https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png')`,
		`INSERT INTO topics (slug, description) VALUES
			('mitch', 'The man, the Mitch, the legend'),
			('cats', 'Not dogs'),
			('paper', 'what books are made of')`,
	}

	for i := 1; i <= 13; i++ {
		topic := "mitch"
		if i == 5 {
			topic = "cats"
		}
		stmts = append(stmts, fmt.Sprintf(`INSERT INTO articles (title, topic, author, body, created_at) VALUES ('Article %d', '%s', 'butter_bridge', 'Body of article %d', NOW() - INTERVAL '%d hours')`, i, topic, i, i))
	}

	stmts = append(stmts,
		`INSERT INTO comments (body, article_id, author, votes, created_at) VALUES
			('First!', 1, 'icellusedkars', 16, NOW() - INTERVAL '10 minutes'),
			('Nice read.', 1, 'rogersop', 0, NOW() - INTERVAL '20 minutes'),
			('I am 100% sure that we are not completely sure.', 5, 'butter_bridge', 1, NOW() - INTERVAL '30 minutes'),
			('git push origin master', 5, 'icellusedkars', 0, NOW() - INTERVAL '40 minutes'),
			('Ambidextrous marsupial', 3, 'icellusedkars', 0, NOW() - INTERVAL '50 minutes')`,
	)

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("could not seed test data: %v", err)
		}
	}
}

func (ts *testServer) get(t *testing.T, path string) (int, http.Header, envelope) {
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) post(t *testing.T, path string, data any) (int, http.Header, envelope) {
	jsonPayload, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	body := bytes.NewReader(jsonPayload)
	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) patch(t *testing.T, path string, data any) (int, http.Header, envelope) {
	jsonPayload, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	body := bytes.NewReader(jsonPayload)
	req, err := http.NewRequest(http.MethodPatch, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) delete(t *testing.T, path string) (int, http.Header, envelope) {
	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}
