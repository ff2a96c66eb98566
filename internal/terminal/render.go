package terminal

import (
	"fmt"
	"strings"

	"codeberg.org/langl/langl/internal/app"
	"codeberg.org/langl/langl/internal/session"
)

// Render prints v. It implements app.Renderer.
func (t *Terminal) Render(v app.View) {
	var b strings.Builder

	for _, n := range v.Notices {
		fmt.Fprintf(&b, "! %s\n", n)
	}

	switch v.Screen {
	case app.ScreenLearn:
		renderLearn(&b, v.Learn)
	case app.ScreenTest:
		renderTest(&b, v.Test)
	default:
		renderSetup(&b, v.Setup)
	}

	t.printf("%s", b.String())
}

func renderSetup(b *strings.Builder, v app.SetupView) {
	if v.Loading {
		b.WriteString("Loading collections...\n")
		return
	}
	if len(v.Collections) == 0 {
		b.WriteString("No collections loaded. Use :load <dir> (or :help).\n")
		return
	}

	b.WriteString("Collections:\n")
	for _, c := range v.Collections {
		marker := " "
		if c.ID == v.SelectedID {
			marker = "*"
		}
		fmt.Fprintf(b, " %s %3d  %s (%d words)\n", marker, c.ID, c.Title, c.Words)
	}
	fmt.Fprintf(b, "Mode: %s", v.Mode)
	if v.Mode == session.ModeTest {
		fmt.Fprintf(b, ", %d words", v.WordCount)
	}
	b.WriteString(". Type :start to begin.\n")
}

func renderLearn(b *strings.Builder, v app.LearnView) {
	if v.Feedback != session.FeedbackNone {
		fmt.Fprintf(b, "%s\n(press ENTER)\n", strings.ToUpper(v.Feedback.String()))
		return
	}
	fmt.Fprintf(b, "[%s] %s\n> ", v.Collection, v.Word)
}

func renderTest(b *strings.Builder, v app.TestView) {
	switch v.Phase {
	case session.PhaseNotStarted:
		fmt.Fprintf(b, "Test: %s, %d words\nPress ENTER to start\n", v.Collection, v.Total)
	case session.PhaseInProgress:
		fmt.Fprintf(b, "(%d/%d) %s\n> ", v.Number, v.Total, v.Word)
	case session.PhaseFinished:
		b.WriteString("Test finished\n")
		for _, row := range v.Summary.Rows {
			fmt.Fprintf(b, "| %-30s | %-30s | %-12s |\n", row.Word, row.Typed, row.Verdict())
		}
		fmt.Fprintf(b, "Correct: %d/%d\n", v.Summary.Correct, v.Summary.Total)
		b.WriteString("Type :save [path] to save the results, ENTER to exit\n")
	}
}
