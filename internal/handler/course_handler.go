package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/learnhub-app/learnhub-backend/internal/models"
	"github.com/learnhub-app/learnhub-backend/internal/service"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
	}
}

func (h *CourseHandler) GetCourses(c *fiber.Ctx) error {
	courses, err := h.courseService.GetPublishedCourses()
	if err != nil {
		return c.Status(statusFromError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(courses, ""))
}

func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	courseID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid course ID"))
	}

	course, err := h.courseService.GetCourseDetail(uint(courseID))
	if err != nil {
		return c.Status(statusFromError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(course, ""))
}
