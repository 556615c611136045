// file: internals/features/imports/controller/import_controller.go
package controller

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tesouraria_backend/internals/constants"
	"tesouraria_backend/internals/features/imports/pipeline"
	service "tesouraria_backend/internals/features/imports/service"
	helper "tesouraria_backend/internals/helpers"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

type ImportController struct {
	Service *service.ImportService
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{Service: service.NewImportService(db)}
}

// readFile buffers the multipart field "file" fully in memory; import
// files are small enough that streaming buys nothing.
func readFile(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func(f multipart.File) { _ = f.Close() }(f)
	return io.ReadAll(f)
}

// respond keeps partial successes visible: any row error turns the reply
// into 422 while the committed counts still ship in the payload.
func respond(c *fiber.Ctx, res pipeline.Result) error {
	if res.HasErrors() {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, helper.CategoryImport,
			"Importação concluída com erros", fiber.Map{
				"created": res.Created,
				"updated": res.Updated,
				"errors":  res.Errors,
			})
	}
	return helper.Success(c, "Importação concluída", res)
}

func (ctl *ImportController) guardReference(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanImportReferenceData {
		return helper.Forbidden(c, "Missing capability: import reference data")
	}
	return nil
}

// ========== Reference data ==========

func (ctl *ImportController) ImportCongregations(c *fiber.Ctx) error {
	if err := ctl.guardReference(c); err != nil {
		return err
	}
	raw, err := readFile(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "missing multipart field \"file\"")
	}
	return respond(c, ctl.Service.ImportCongregations(raw))
}

func (ctl *ImportController) ImportContributors(c *fiber.Ctx) error {
	if err := ctl.guardReference(c); err != nil {
		return err
	}
	raw, err := readFile(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "missing multipart field \"file\"")
	}
	return respond(c, ctl.Service.ImportContributors(raw))
}

func (ctl *ImportController) ImportSuppliers(c *fiber.Ctx) error {
	if err := ctl.guardReference(c); err != nil {
		return err
	}
	raw, err := readFile(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "missing multipart field \"file\"")
	}
	return respond(c, ctl.Service.ImportSuppliers(raw))
}

func (ctl *ImportController) ImportClassifications(c *fiber.Ctx) error {
	if err := ctl.guardReference(c); err != nil {
		return err
	}
	raw, err := readFile(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "missing multipart field \"file\"")
	}
	return respond(c, ctl.Service.ImportClassifications(raw))
}

// ========== Users ==========

func (ctl *ImportController) ImportUsers(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageUsers {
		return helper.Forbidden(c, "Missing capability: manage users")
	}
	raw, err := readFile(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "missing multipart field \"file\"")
	}
	return respond(c, ctl.Service.ImportUsers(raw, helperAuth.GetUserName(c)))
}

func (ctl *ImportController) ImportUserCongregations(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageUsers {
		return helper.Forbidden(c, "Missing capability: manage users")
	}
	raw, err := readFile(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "missing multipart field \"file\"")
	}
	return respond(c, ctl.Service.ImportUserCongregations(raw))
}

// ========== Launches ==========
// POST /launches/import?congregation_id&type[&classification_id]
func (ctl *ImportController) ImportLaunches(c *fiber.Ctx) error {
	caps := helperAuth.GetCapabilities(c)
	if !caps.CanImportLaunches {
		return helper.Forbidden(c, "Missing capability: import launches")
	}

	congID, err := uuid.Parse(strings.TrimSpace(c.Query("congregation_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "congregation_id invalid")
	}
	if !helperAuth.MayOperateOn(c, congID) {
		return helper.Forbidden(c, "Congregation outside your scope")
	}

	launchType := constants.LaunchType(strings.TrimSpace(c.Query("type")))
	if !launchType.Valid() {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "type invalid")
	}
	if !caps.CanLaunch(launchType) {
		return helper.Forbidden(c, "Missing capability: launch "+string(launchType))
	}

	var classificationID *uuid.UUID
	if cls := strings.TrimSpace(c.Query("classification_id")); cls != "" {
		id, err := uuid.Parse(cls)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "classification_id invalid")
		}
		classificationID = &id
	}

	raw, err := readFile(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "missing multipart field \"file\"")
	}
	return respond(c, ctl.Service.ImportLaunches(raw, congID, launchType, classificationID))
}
