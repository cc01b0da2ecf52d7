package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/service"
)

// Operations, used as the log message when a call fails.
const (
	opFetch  = "error fetching tasks"
	opAdd    = "error adding task"
	opDelete = "error deleting task"
	opUpdate = "error updating task"
	opToggle = "error toggling task completion"
)

type tasksLoadedMsg struct{ tasks []service.Task }

type taskCreatedMsg struct{ task service.Task }

type taskDeletedMsg struct{ id service.ID }

type titleSavedMsg struct {
	id    service.ID
	title string
}

type completionToggledMsg struct{ id service.ID }

// remoteErrMsg reports a failed call. It only ever reaches the log.
type remoteErrMsg struct {
	op  string
	id  service.ID
	err error
}

type statusMsg struct{ message string }

func showStatus(msg string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{message: msg}
	}
}

func fetchTasks(ctx context.Context, svc service.Service) tea.Cmd {
	return func() tea.Msg {
		tasks, err := svc.ListTasks(ctx)
		if err != nil {
			return remoteErrMsg{op: opFetch, err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func createTask(ctx context.Context, svc service.Service, title string) tea.Cmd {
	return func() tea.Msg {
		t, err := svc.CreateTask(ctx, service.NewTask{Title: title, Completed: false})
		if err != nil {
			return remoteErrMsg{op: opAdd, err: err}
		}
		return taskCreatedMsg{task: t}
	}
}

func deleteTask(ctx context.Context, svc service.Service, id service.ID) tea.Cmd {
	return func() tea.Msg {
		if err := svc.DeleteTask(ctx, id); err != nil {
			return remoteErrMsg{op: opDelete, id: id, err: err}
		}
		return taskDeletedMsg{id: id}
	}
}

func saveTitle(ctx context.Context, svc service.Service, id service.ID, title string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.UpdateTask(ctx, id, service.TitlePatch(title)); err != nil {
			return remoteErrMsg{op: opUpdate, id: id, err: err}
		}
		return titleSavedMsg{id: id, title: title}
	}
}

func setCompleted(ctx context.Context, svc service.Service, id service.ID, completed bool) tea.Cmd {
	return func() tea.Msg {
		if err := svc.UpdateTask(ctx, id, service.CompletedPatch(completed)); err != nil {
			return remoteErrMsg{op: opToggle, id: id, err: err}
		}
		return completionToggledMsg{id: id}
	}
}
