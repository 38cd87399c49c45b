package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"SkinScout/internal/analyzer"
	"SkinScout/internal/calculator"
	"SkinScout/internal/model"
	"SkinScout/internal/notifier"
	"SkinScout/internal/recorder"
)

// Engine is the query surface the scheduler drives.
type Engine interface {
	GetOpportunities(ctx context.Context, count int, maxPrice *float64, category string) analyzer.Result
	SearchOpportunities(ctx context.Context, query string, count int, maxPrice *float64) analyzer.Result
	Regime() model.Regime
	Categories() []string
}

// Sender delivers messages to the configured chat.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler runs the periodic market digest and answers chat commands.
type Scheduler struct {
	Cron     *cron.Cron
	Engine   Engine
	Notifier Sender
	Recorder recorder.Recorder
	Ctx      context.Context
	TopCount int

	updateID cron.EntryID
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, engine Engine, sender Sender, rec recorder.Recorder, topCount int) *Scheduler {
	if topCount <= 0 {
		topCount = 3
	}
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Engine:   engine,
		Notifier: sender,
		Recorder: rec,
		Ctx:      ctx,
		TopCount: topCount,
	}
}

// Register schedules the auto-update digest.
func (s *Scheduler) Register(updateCron string) error {
	id, err := s.Cron.AddFunc(updateCron, s.updateTask)
	if err != nil {
		return fmt.Errorf("register update task: %w", err)
	}
	s.updateID = id
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RunUpdateNow posts the digest immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunUpdateNow() {
	s.updateTask()
}

func (s *Scheduler) updateTask() {
	log.Info().Msg("running auto-update")
	res := s.Engine.GetOpportunities(s.Ctx, analyzer.MaxCount, nil, "")
	summary := calculator.Summarize(res.Opportunities)

	top := res.Opportunities
	if len(top) > s.TopCount {
		top = top[:s.TopCount]
	}
	msg := notifier.FormatAutoUpdate(notifier.Report{
		Opportunities: top,
		RealData:      res.RealData,
		Regime:        res.Regime,
	}, summary, s.nextUpdate())
	s.trySend(msg)
	s.recordRun("auto_update", "", res)
}

func (s *Scheduler) nextUpdate() string {
	if s.updateID == 0 {
		return ""
	}
	entry := s.Cron.Entry(s.updateID)
	if !entry.Valid() || entry.Schedule == nil {
		return ""
	}
	return entry.Schedule.Next(time.Now()).Format("2006-01-02 15:04")
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	name, args := splitCommand(command)
	switch name {
	case "/analyze":
		count, maxPrice, err := parseAnalyzeArgs(args)
		if err != nil {
			return fmt.Sprintf("⚠️ %v\nUsage: /analyze [count] [max_price]", err)
		}
		res := s.Engine.GetOpportunities(ctx, count, maxPrice, "")
		s.recordRun("analyze", strings.Join(args, " "), res)
		return s.report("Top CS2 Investment Opportunities", res)
	case "/invest":
		category := strings.ToLower(strings.Join(args, " "))
		title := "Top CS2 Investment Opportunities"
		if category != "" {
			title = fmt.Sprintf("Top %s Opportunities", category)
		}
		res := s.Engine.GetOpportunities(ctx, analyzer.DefaultCount, nil, category)
		s.recordRun("invest", category, res)
		return s.report(title, res)
	case "/search":
		query := strings.Join(args, " ")
		if query == "" {
			return "⚠️ Usage: /search &lt;query&gt;"
		}
		res := s.Engine.SearchOpportunities(ctx, query, analyzer.DefaultCount, nil)
		s.recordRun("search", query, res)
		return s.report(fmt.Sprintf("Results: %s", query), res)
	case "/categories":
		return notifier.FormatCategories(s.Engine.Categories())
	case "/regime":
		return notifier.FormatRegime(s.Engine.Regime())
	case "/ping":
		return "🏓 Pong! Bot is online"
	default:
		return notifier.HelpText
	}
}

func (s *Scheduler) report(title string, res analyzer.Result) string {
	return notifier.FormatReport(notifier.Report{
		Title:         title,
		Opportunities: res.Opportunities,
		RealData:      res.RealData,
		Regime:        res.Regime,
	})
}

// splitCommand lowercases the command word and strips a "@botname" suffix.
func splitCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil
	}
	name := strings.ToLower(fields[0])
	if i := strings.IndexByte(name, '@'); i > 0 {
		name = name[:i]
	}
	return name, fields[1:]
}

func parseAnalyzeArgs(args []string) (int, *float64, error) {
	count := analyzer.DefaultCount
	var maxPrice *float64
	if len(args) > 2 {
		return 0, nil, fmt.Errorf("too many arguments")
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return 0, nil, fmt.Errorf("count must be a positive integer")
		}
		count = n
	}
	if len(args) > 1 {
		p, err := strconv.ParseFloat(strings.TrimPrefix(args[1], "$"), 64)
		if err != nil || p <= 0 {
			return 0, nil, fmt.Errorf("max_price must be a positive number")
		}
		maxPrice = &p
	}
	return count, maxPrice, nil
}

func (s *Scheduler) recordRun(command, args string, res analyzer.Result) {
	rec := recorder.NewRunRecord(command, args)
	rec.Regime = res.Regime.Label()
	rec.Source = "simulated"
	if res.RealData {
		rec.Source = "live"
	}
	rec.Count = len(res.Opportunities)
	if !res.Empty() {
		rec.TopName = res.Opportunities[0].Name
		rec.TopScore = res.Opportunities[0].Score
		rec.AvgScore = calculator.Summarize(res.Opportunities).MeanScore
	}
	if err := s.Recorder.RecordRun(rec); err != nil {
		log.Error().Err(err).Str("command", command).Msg("record run")
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Error().Err(err).Msg("send notification")
	}
}
