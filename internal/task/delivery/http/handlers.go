package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"timeline-to-calendar/internal/middleware"
	"timeline-to-calendar/internal/task"
	"timeline-to-calendar/pkg/response"
)

// ListLists godoc
// @Summary     List task lists
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} []taskListResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/lists [GET]
func (h *handler) ListLists(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	lists, err := h.uc.ListLists(ctx, user.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLists: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	resps := make([]taskListResp, len(lists))
	for i, l := range lists {
		resps[i] = newTaskListResp(l)
	}
	response.OK(c, resps)
}

// CreateList godoc
// @Summary     Create a task list
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createListReq true "List title"
// @Success     200 {object} taskListResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/lists [POST]
func (h *handler) CreateList(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	list, err := h.uc.CreateList(ctx, task.CreateListInput{UserID: user.ID, Title: req.Title})
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateList: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskListResp(list))
}

// ListTasks godoc
// @Summary     List tasks in a list
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       listId path string true "Task list ID"
// @Param       include_completed query bool false "Include completed tasks (default true)"
// @Success     200 {object} []taskResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/{listId} [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	includeCompleted := c.DefaultQuery("include_completed", "true") != "false"
	tasks, err := h.uc.ListTasks(ctx, task.ListTasksInput{
		UserID:           user.ID,
		ListID:           c.Param("listId"),
		IncludeCompleted: includeCompleted,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResps(tasks))
}

// CreateTask godoc
// @Summary     Create a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       listId path string true "Task list ID"
// @Param       body body createTaskReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{listId}/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.CreateTask(ctx, req.toInput(user.ID, c.Param("listId")))
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(created))
}

// UpdateTask godoc
// @Summary     Update a task
// @Description Partial update; a completed flag toggles the task's status both ways.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       listId path string true "Task list ID"
// @Param       id     path string true "Task ID"
// @Param       body body updateTaskReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{listId}/tasks/{id} [PATCH]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.UpdateTask(ctx, req.toInput(user.ID, c.Param("listId"), c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       listId path string true "Task list ID"
// @Param       id     path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{listId}/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.DeleteTask(ctx, user.ID, c.Param("listId"), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Parse godoc
// @Summary     Parse timeline text into tasks
// @Description Sends the text to the chosen LLM provider and creates the parsed tasks in the list.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       listId path string true "Task list ID"
// @Param       body body parseReq true "Timeline text and provider selection"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/tasks/{listId}/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput(user.ID, c.Param("listId")))
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Sync godoc
// @Summary     Sync with Google Tasks
// @Description Pulls lists and tasks from Google Tasks into the local store.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       listId path string true "Task list ID"
// @Success     200 {object} syncResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/{listId}/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Sync(ctx, user.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, syncResp{
		Success: true,
		Message: fmt.Sprintf("Synced %d tasks and %d lists", output.SyncedTasks, output.SyncedLists),
	})
}
