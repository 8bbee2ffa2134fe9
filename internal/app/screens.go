package app

import (
	"context"
	"errors"
	"strconv"

	"github.com/codequizzer/quizapp/internal/quiz"
)

func (a *App) loginScreen(ctx context.Context) (string, error) {
	a.printf("\n=== Welcome to CodeQuizzer ===\n")
	a.printf("[1] sign in   [2] create an account   [q] quit\n")

	choice, err := a.readLine("> ")
	if err != nil {
		return "", err
	}
	switch choice {
	case "1":
		email, err := a.readLine("email: ")
		if err != nil {
			return "", err
		}
		password, err := a.readLine("password: ")
		if err != nil {
			return "", err
		}
		if err := a.auth.Login(ctx, email, password); err != nil {
			a.banner(err)
			return routeLogin, nil
		}
		a.username = email
		return routeWelcome + "/" + email, nil
	case "2":
		return routeRegister, nil
	case "q":
		return routeQuit, nil
	default:
		return routeLogin, nil
	}
}

func (a *App) registerScreen(ctx context.Context) (string, error) {
	a.printf("\n=== Create Account ===\n")

	var form [5]string
	prompts := [5]string{"first name: ", "last name: ", "email: ", "age: ", "password: "}
	for i, p := range prompts {
		v, err := a.readLine(p)
		if err != nil {
			return "", err
		}
		form[i] = v
	}

	err := a.auth.Register(ctx, form[0], form[1], form[2], form[3], form[4])
	if err != nil {
		a.banner(err)
		return routeRegister, nil
	}

	// Registration never establishes a session; sign in separately.
	a.printf("\nAccount created. Please sign in.\n")
	return routeLogin, nil
}

func (a *App) welcomeScreen(ctx context.Context, username string) (string, error) {
	a.printf("\nWelcome, %s!\n\n", username)

	cats := quiz.Categories()
	for i, c := range cats {
		a.printf("[%d] %s\n", i+1, c.Name)
	}
	a.printf("[l] log out   [q] quit\n")

	choice, err := a.readLine("> ")
	if err != nil {
		return "", err
	}
	switch choice {
	case "l":
		if err := a.tokens.Clear(ctx); err != nil {
			a.logger.Error("clearing token failed", "error", err)
		}
		a.username = "guest"
		return routeLogin, nil
	case "q":
		return routeQuit, nil
	}

	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(cats) {
		return cats[n-1].Slug, nil
	}
	return routeWelcome + "/" + username, nil
}

func (a *App) categoryScreen(ctx context.Context, cat quiz.CategorySet) (string, error) {
	events := make(chan quiz.Snapshot, 16)
	session, err := quiz.NewSession(cat.Questions,
		quiz.WithRevealDelay(a.revealDelay),
		quiz.WithObserver(func(snap quiz.Snapshot) { events <- snap }),
	)
	if errors.Is(err, quiz.ErrEmptyQuestionSet) {
		a.printf("\nNo questions in this category yet.\n")
		return routeWelcome + "/" + a.username, nil
	}
	if err != nil {
		return "", err
	}
	defer session.Close()

	a.printf("\n=== %s ===\n", cat.Name)

	snap := session.Snapshot()
	for {
		a.printf("\nQuestion %d / %d\n", snap.CurrentIndex+1, snap.TotalQuestions)
		a.printf("%s\n", snap.Question.Text)
		for i, opt := range snap.Question.Options {
			a.printf("  [%d] %s\n", i+1, opt)
		}

		choice, err := a.readLine("answer: ")
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(choice)
		if err != nil {
			a.printf("pick a number between 1 and %d\n", len(snap.Question.Options))
			continue
		}
		if err := session.SelectAnswer(n - 1); errors.Is(err, quiz.ErrInvalidOption) {
			a.printf("pick a number between 1 and %d\n", len(snap.Question.Options))
			continue
		}

		// SelectAnswer delivered the revealing snapshot before returning,
		// so this read never blocks and never races the reveal timer.
		reveal := <-events
		if reveal.Correct() {
			a.printf("correct!\n")
		} else {
			a.printf("wrong — the answer was %q\n", reveal.Question.Options[reveal.Question.CorrectIndex])
		}

		// The session advances itself once the reveal delay elapses.
		next, err := a.waitForAdvance(ctx, events)
		if err != nil {
			return "", err
		}
		if next.Phase == quiz.PhaseFinished {
			break
		}
		snap = next
	}

	sum, err := session.Summary()
	if err != nil {
		return "", err
	}
	a.printf("\nQuiz finished!\n")
	a.printf("Score: %d of %d\n", sum.Correct, sum.Total)
	a.printf("%s\n", sum.Tier.Message())

	return routeWelcome + "/" + a.username, nil
}

// waitForAdvance blocks until the reveal timer moves the session past
// PhaseRevealing.
func (a *App) waitForAdvance(ctx context.Context, events <-chan quiz.Snapshot) (quiz.Snapshot, error) {
	for {
		select {
		case snap := <-events:
			if snap.Phase != quiz.PhaseRevealing {
				return snap, nil
			}
		case <-ctx.Done():
			return quiz.Snapshot{}, ctx.Err()
		}
	}
}
