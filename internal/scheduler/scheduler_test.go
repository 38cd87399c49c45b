package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"SkinScout/internal/analyzer"
	"SkinScout/internal/market"
	"SkinScout/internal/notifier"
	"SkinScout/internal/recorder"
)

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendWithRetry(_ context.Context, text string, _ int) error {
	f.sent = append(f.sent, text)
	return f.err
}

type memRecorder struct {
	runs []*recorder.RunRecord
	err  error
}

func (m *memRecorder) RecordRun(rec *recorder.RunRecord) error {
	m.runs = append(m.runs, rec)
	return m.err
}

func (m *memRecorder) Close() error { return nil }

func newTestScheduler(t *testing.T) (*Scheduler, *fakeSender, *memRecorder) {
	t.Helper()
	engine := analyzer.New(analyzer.Options{Random: market.NewSource(42)})
	sender := &fakeSender{}
	rec := &memRecorder{}
	return NewScheduler(context.Background(), engine, sender, rec, 3), sender, rec
}

func TestHandleCommand_Analyze(t *testing.T) {
	s, _, rec := newTestScheduler(t)

	reply := s.HandleCommand(context.Background(), "/analyze 3 5000")
	if !strings.Contains(reply, "1. ") || !strings.Contains(reply, "3. ") || strings.Contains(reply, "4. ") {
		t.Errorf("expected exactly 3 ranked items:\n%s", reply)
	}
	if !strings.Contains(reply, "Simulated market") {
		t.Errorf("offline engine should report simulated data:\n%s", reply)
	}
	if len(rec.runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(rec.runs))
	}
	run := rec.runs[0]
	if run.Command != "analyze" || run.Args != "3 5000" || run.Source != "simulated" || run.Count != 3 {
		t.Errorf("unexpected run %+v", run)
	}
	if run.TopName == "" || run.TopScore == 0 || run.AvgScore == 0 {
		t.Errorf("top pick not recorded: %+v", run)
	}
}

func TestHandleCommand_AnalyzeBadArgs(t *testing.T) {
	s, _, rec := newTestScheduler(t)
	for _, cmd := range []string{"/analyze abc", "/analyze 0", "/analyze 5 cheap", "/analyze 1 2 3"} {
		reply := s.HandleCommand(context.Background(), cmd)
		if !strings.Contains(reply, "Usage: /analyze") {
			t.Errorf("%q: expected usage, got %q", cmd, reply)
		}
	}
	if len(rec.runs) != 0 {
		t.Errorf("invalid commands must not be recorded")
	}
}

func TestHandleCommand_Invest(t *testing.T) {
	s, _, _ := newTestScheduler(t)

	reply := s.HandleCommand(context.Background(), "/invest Knives")
	if !strings.Contains(reply, "Top knives Opportunities") || !strings.Contains(reply, "(knives)") {
		t.Errorf("unexpected knives reply:\n%s", reply)
	}
	if strings.Contains(reply, "(rifles)") {
		t.Errorf("category filter leaked other items:\n%s", reply)
	}

	if reply := s.HandleCommand(context.Background(), "/invest stickers"); reply != notifier.NoOpportunitiesText {
		t.Errorf("unknown category: got %q", reply)
	}
}

func TestHandleCommand_Search(t *testing.T) {
	s, _, rec := newTestScheduler(t)

	if reply := s.HandleCommand(context.Background(), "/search"); !strings.Contains(reply, "Usage: /search") {
		t.Errorf("expected usage, got %q", reply)
	}
	reply := s.HandleCommand(context.Background(), "/search redline")
	if !strings.Contains(reply, "AK-47 | Redline") {
		t.Errorf("expected Redline in results:\n%s", reply)
	}
	if len(rec.runs) != 1 || rec.runs[0].Args != "redline" {
		t.Errorf("search not recorded: %+v", rec.runs)
	}
}

func TestHandleCommand_Misc(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	tests := []struct {
		cmd  string
		want string
	}{
		{"/ping", "Pong"},
		{"/PING@SkinScoutBot", "Pong"},
		{"/help", "/analyze [count] [max_price]"},
		{"hello there", "/analyze [count] [max_price]"},
		{"", "/analyze [count] [max_price]"},
		{"/categories", "• knives"},
		{"/regime", "Market regime:"},
	}
	for _, tt := range tests {
		if got := s.HandleCommand(context.Background(), tt.cmd); !strings.Contains(got, tt.want) {
			t.Errorf("%q: reply %q does not contain %q", tt.cmd, got, tt.want)
		}
	}
}

func TestHandleCommand_RecorderErrorIgnored(t *testing.T) {
	s, _, rec := newTestScheduler(t)
	rec.err = errors.New("database is locked")
	if reply := s.HandleCommand(context.Background(), "/analyze"); reply == notifier.NoOpportunitiesText || reply == "" {
		t.Errorf("recorder failure must not affect the reply, got %q", reply)
	}
}

func TestRunUpdateNow(t *testing.T) {
	s, sender, rec := newTestScheduler(t)
	if err := s.Register("0 0 */6 * * *"); err != nil {
		t.Fatalf("register: %v", err)
	}

	s.RunUpdateNow()
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 digest, got %d", len(sender.sent))
	}
	msg := sender.sent[0]
	for _, want := range []string{"CS2 Market Auto-Update", "1. ", "3. ", "Avg score", "Next update:"} {
		if !strings.Contains(msg, want) {
			t.Errorf("digest missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "4. ") {
		t.Errorf("digest should list only the top 3:\n%s", msg)
	}
	if len(rec.runs) != 1 || rec.runs[0].Command != "auto_update" {
		t.Errorf("digest not recorded: %+v", rec.runs)
	}
}

func TestRegister_InvalidCron(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	if err := s.Register("every six hours"); err == nil {
		t.Error("expected invalid cron error")
	}
}

func TestParseAnalyzeArgs(t *testing.T) {
	tests := []struct {
		args      []string
		wantCount int
		wantMax   float64
		wantErr   bool
	}{
		{nil, analyzer.DefaultCount, 0, false},
		{[]string{"10"}, 10, 0, false},
		{[]string{"10", "$50"}, 10, 50, false},
		{[]string{"3", "12.5"}, 3, 12.5, false},
		{[]string{"-1"}, 0, 0, true},
		{[]string{"3", "0"}, 0, 0, true},
	}
	for _, tt := range tests {
		count, maxPrice, err := parseAnalyzeArgs(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("%v: err = %v", tt.args, err)
			continue
		}
		if tt.wantErr {
			continue
		}
		if count != tt.wantCount {
			t.Errorf("%v: count = %d, want %d", tt.args, count, tt.wantCount)
		}
		if tt.wantMax == 0 && maxPrice != nil {
			t.Errorf("%v: expected no max price", tt.args)
		}
		if tt.wantMax != 0 && (maxPrice == nil || *maxPrice != tt.wantMax) {
			t.Errorf("%v: max price = %v, want %v", tt.args, maxPrice, tt.wantMax)
		}
	}
}
