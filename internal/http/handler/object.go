package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/service"
	"docvault/internal/validation"
)

type createObjectRequest struct {
	Class      string            `json:"class" validate:"required,code,max=64"`
	ID         string            `json:"id" validate:"omitempty,max=255"`
	Attributes map[string]string `json:"attributes"`
}

// CreateObject godoc
// @Summary Create an object
// @Description Creates an object documents can be attached to. An empty id is generated.
// @Tags objects
// @Accept json
// @Produce json
// @Param object body createObjectRequest true "Object"
// @Success 201 {object} model.Object
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /objects [post]
func CreateObject(objSvc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createObjectRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := validation.ValidateStruct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		}

		obj, err := objSvc.Create(c.UserContext(), req.Class, req.ID, req.Attributes)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(obj)
	}
}

// ListObjects godoc
// @Summary List objects
// @Tags objects
// @Produce json
// @Param class path string true "Object class"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} service.ObjectListResult
// @Failure 400 {object} errorPayload
// @Router /objects/{class} [get]
func ListObjects(objSvc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := objSvc.List(c.UserContext(), c.Params("class"), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetObject godoc
// @Summary Get an object
// @Tags objects
// @Produce json
// @Param class path string true "Object class"
// @Param id path string true "Object id"
// @Param secret query string false "Object secret"
// @Success 200 {object} model.Object
// @Failure 404 {object} errorPayload
// @Router /objects/{class}/{id} [get]
func GetObject(objSvc service.ObjectService, secretField string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		obj, err := objSvc.Get(c.UserContext(), c.Params("class"), c.Params("id"), callerSecret(c, secretField))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(obj)
	}
}
