package shell

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/ashramdev/sangha/internal/alert"
	"github.com/ashramdev/sangha/internal/feed"
	"github.com/ashramdev/sangha/internal/seva"
	"github.com/ashramdev/sangha/internal/task"
)

// renderTimeout bounds how long a view waits on the backend before the
// page degrades to a placeholder
const renderTimeout = 10 * time.Second

// feedReader is the slice of the feed service the sangha view needs
type feedReader interface {
	Feed(ctx context.Context, limit, offset int) ([]*feed.FeedItem, error)
}

// alertReader is the slice of the alert service the sangha view needs
type alertReader interface {
	Recent(ctx context.Context) ([]*alert.Alert, error)
}

// taskReader is the slice of the task service the board view needs
type taskReader interface {
	List(ctx context.Context, filter task.Filter, actor *task.Actor) ([]*task.SevaTask, error)
}

// sevaReader is the slice of the seva service the tracker view needs
type sevaReader interface {
	TodayActivity(ctx context.Context) (*seva.DayActivity, error)
}

// SanghaModule renders the community feed with any live alerts on top
type SanghaModule struct {
	BaseModule
	feeds  feedReader
	alerts alertReader
}

// NewSanghaModule creates the feed view module
func NewSanghaModule(feeds feedReader, alerts alertReader) *SanghaModule {
	return &SanghaModule{feeds: feeds, alerts: alerts}
}

func (m *SanghaModule) Name() string  { return "sangha" }
func (m *SanghaModule) Title() string { return "Sangha Feed" }

func (m *SanghaModule) Render() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
	defer cancel()

	var b strings.Builder
	b.WriteString(`<section class="sangha-feed">`)

	// A failed alert fetch degrades silently; the feed is the page's point
	if alerts, err := m.alerts.Recent(ctx); err == nil {
		for _, a := range alerts {
			fmt.Fprintf(&b, `<div class="alert-banner alert-%s"><strong>%s</strong> %s</div>`,
				html.EscapeString(a.Type), html.EscapeString(a.Title), html.EscapeString(a.Message))
		}
	}

	items, err := m.feeds.Feed(ctx, 20, 0)
	if err != nil {
		b.WriteString(`<p class="empty-state">The feed could not be loaded. Please refresh.</p></section>`)
		return b.String(), nil
	}

	if len(items) == 0 {
		b.WriteString(`<p class="empty-state">No posts yet. Be the first to share.</p>`)
	}
	for _, it := range items {
		fmt.Fprintf(&b, `<article class="post post-%s"><header>%s</header>`,
			html.EscapeString(string(it.Type)), html.EscapeString(it.Member.Name))
		if it.Content != nil {
			fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(*it.Content))
		}
		if it.PhotoURL != nil {
			fmt.Fprintf(&b, `<img src="%s" alt="">`, html.EscapeString(*it.PhotoURL))
		}
		fmt.Fprintf(&b, `<footer>%d reactions · %d comments</footer></article>`,
			it.ReactionCount, it.CommentCount)
	}

	b.WriteString(`</section>`)
	return b.String(), nil
}

// TasksModule renders the seva task board
type TasksModule struct {
	BaseModule
	tasks taskReader
}

// NewTasksModule creates the task board view module
func NewTasksModule(tasks taskReader) *TasksModule {
	return &TasksModule{tasks: tasks}
}

func (m *TasksModule) Name() string  { return "tasks" }
func (m *TasksModule) Title() string { return "Seva Tasks" }

func (m *TasksModule) Render() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
	defer cancel()

	tasks, err := m.tasks.List(ctx, task.FilterAll, nil)
	if err != nil {
		return `<section class="task-board"><p class="empty-state">Tasks could not be loaded. Please refresh.</p></section>`, nil
	}

	var b strings.Builder
	b.WriteString(`<section class="task-board">`)
	if len(tasks) == 0 {
		b.WriteString(`<p class="empty-state">No tasks on the board.</p>`)
	}
	for _, t := range tasks {
		fmt.Fprintf(&b, `<div class="task-card status-%s"><h3>%s</h3>`,
			html.EscapeString(string(t.Status)), html.EscapeString(t.Title))
		if t.Description != nil {
			fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(*t.Description))
		}
		if t.ClaimedByName != nil {
			fmt.Fprintf(&b, `<p class="claimed-by">Claimed by <strong>%s</strong></p>`,
				html.EscapeString(*t.ClaimedByName))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</section>`)
	return b.String(), nil
}

// SevaModule renders today's check-in activity per seva type
type SevaModule struct {
	BaseModule
	tracker sevaReader
}

// NewSevaModule creates the seva tracker view module
func NewSevaModule(tracker sevaReader) *SevaModule {
	return &SevaModule{tracker: tracker}
}

func (m *SevaModule) Name() string  { return "seva" }
func (m *SevaModule) Title() string { return "Seva Tracker" }

func (m *SevaModule) Render() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
	defer cancel()

	activity, err := m.tracker.TodayActivity(ctx)
	if err != nil {
		return `<section class="seva-tracker"><p class="empty-state">Seva activity could not be loaded. Please refresh.</p></section>`, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<section class="seva-tracker"><h2>Seva for %s</h2>`, activity.Date)
	if len(activity.Summary) == 0 {
		b.WriteString(`<p class="empty-state">No seva recorded today.</p>`)
	}
	for _, group := range activity.Summary {
		label := group.Type
		if t := seva.TypeByID(group.Type); t != nil {
			label = t.Name
		}
		fmt.Fprintf(&b, `<div class="seva-group"><h3>%s</h3><p>%s total · %d active · %d completed</p></div>`,
			html.EscapeString(label), seva.FormatDuration(group.TotalMinutes),
			group.ActiveCount, group.CompletedCount)
	}
	b.WriteString(`</section>`)
	return b.String(), nil
}
