package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/viewmall/commerce-api/internal/core/ports"
)

// QnaHandler handles the question/answer endpoints.
type QnaHandler struct {
	service ports.QnaService
}

func NewQnaHandler(service ports.QnaService) *QnaHandler {
	return &QnaHandler{service: service}
}

type createQuestionRequest struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

type createAnswerRequest struct {
	Content string `json:"content" validate:"required"`
}

// List handles GET /api/qna?page=&size=.
//
// @Summary      List questions (paginated, newest first)
// @Tags         qna
// @Produce      json
// @Param        page  query     int  false  "Zero-based page index"
// @Param        size  query     int  false  "Page size (default 10)"
// @Success      200   {object}  ports.QuestionPage
// @Router       /api/qna [get]
func (h *QnaHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	result, err := h.service.ListQuestions(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Search handles GET /api/qna/search?keyword=&page=&size=.
//
// @Summary      Search questions by keyword
// @Tags         qna
// @Produce      json
// @Param        keyword  query     string  true   "Substring matched against title and content"
// @Param        page     query     int     false  "Zero-based page index"
// @Param        size     query     int     false  "Page size (default 10)"
// @Success      200      {object}  ports.QuestionPage
// @Router       /api/qna/search [get]
func (h *QnaHandler) Search(c echo.Context) error {
	page, size := pageParams(c)
	result, err := h.service.SearchQuestions(c.Request().Context(), c.QueryParam("keyword"), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Get handles GET /api/qna/:id. The detail view embeds the answer when one
// exists.
//
// @Summary      Get a question with its answer
// @Tags         qna
// @Produce      json
// @Param        id   path      string  true  "Question id"
// @Success      200  {object}  ports.QuestionView
// @Failure      404  {object}  errorResponse
// @Router       /api/qna/{id} [get]
func (h *QnaHandler) Get(c echo.Context) error {
	view, err := h.service.GetQuestion(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// My handles GET /api/qna/my.
//
// @Summary      List the caller's questions
// @Tags         qna
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Question
// @Failure      401  {object}  errorResponse
// @Router       /api/qna/my [get]
func (h *QnaHandler) My(c echo.Context) error {
	questions, err := h.service.MyQuestions(c.Request().Context(), currentPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, questions)
}

// Create handles POST /api/qna.
//
// @Summary      Create a question
// @Tags         qna
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createQuestionRequest  true  "Question details"
// @Success      201   {object}  domain.Question
// @Failure      401   {object}  errorResponse
// @Router       /api/qna [post]
func (h *QnaHandler) Create(c echo.Context) error {
	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	question, err := h.service.CreateQuestion(c.Request().Context(), currentPrincipal(c), ports.CreateQuestionInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, question)
}

// Delete handles DELETE /api/qna/:id (owner only; cascades the answer).
//
// @Summary      Delete an owned question
// @Tags         qna
// @Security     BearerAuth
// @Param        id  path  string  true  "Question id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/qna/{id} [delete]
func (h *QnaHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteQuestion(c.Request().Context(), currentPrincipal(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Answer handles POST /api/qna/:id/answer (admin only).
//
// @Summary      Answer a question
// @Tags         qna
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Question id"
// @Param        body  body      createAnswerRequest  true  "Answer content"
// @Success      201   {object}  domain.Answer
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/qna/{id}/answer [post]
func (h *QnaHandler) Answer(c echo.Context) error {
	var req createAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	answer, err := h.service.CreateAnswer(c.Request().Context(), currentPrincipal(c), c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, answer)
}

// pageParams parses zero-based pagination query parameters. Absent or
// malformed values fall back to page 0 and the service's default size.
func pageParams(c echo.Context) (page, size int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	size, _ = strconv.Atoi(c.QueryParam("size"))
	return page, size
}
