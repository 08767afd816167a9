// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"strconv"

	apperrors "beautybook/internal/errors"
	"beautybook/internal/models"
	"beautybook/internal/service"
	"beautybook/pkg/response"

	"github.com/gin-gonic/gin"
)

// PackageHandler handles HTTP requests for beauty package operations.
type PackageHandler struct {
	service service.PackageServicer
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(service service.PackageServicer) *PackageHandler {
	return &PackageHandler{service: service}
}

// ListPackages godoc
// @Summary      List beauty packages
// @Description  Retrieve a paginated list of beauty packages, optionally filtered by a case-insensitive title search
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        page      query     int     false  "Page number (default: 1)"
// @Param        pageSize  query     int     false  "Items per page (default: 10, max: 50)"
// @Param        search    query     string  false  "Title search term"
// @Success      200       {object}  response.Response{data=models.BeautyPackageListResponse}
// @Failure      500       {object}  response.Response
// @Router       /packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	search := c.Query("search")

	result, err := h.service.ListPackages(c.Request.Context(), page, pageSize, search)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetPackage godoc
// @Summary      Get beauty package by ID
// @Description  Retrieve a single beauty package, including its derived booking count
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Package ID"
// @Success      200  {object}  response.Response{data=models.BeautyPackage}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /packages/{id} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	id := c.Param("id")

	pkg, err := h.service.GetPackage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPackageNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, pkg)
}

// CreatePackage godoc
// @Summary      Create beauty package
// @Description  Create a new beauty package offering
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateBeautyPackageRequest  true  "Package fields"
// @Success      201      {object}  response.Response{data=models.BeautyPackage}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req models.CreateBeautyPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pkg, err := h.service.CreatePackage(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, pkg)
}

// UpdatePackage godoc
// @Summary      Update beauty package
// @Description  Partially update a beauty package; omitted fields are left unchanged
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        id       path      string                             true  "Package ID"
// @Param        request  body      models.UpdateBeautyPackageRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.BeautyPackage}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /packages/{id} [put]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateBeautyPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pkg, err := h.service.UpdatePackage(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPackageNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, pkg)
}

// DeletePackage godoc
// @Summary      Delete beauty package
// @Description  Remove a beauty package and all of its bookings; returns the deleted record
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Package ID"
// @Success      200  {object}  response.Response{data=models.BeautyPackage}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id := c.Param("id")

	pkg, err := h.service.DeletePackage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPackageNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, pkg)
}

// NewImageUpload godoc
// @Summary      Request package image upload
// @Description  Register a new image on a package and receive a pre-signed upload URL
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Package ID"
// @Param        request  body      models.ImageUploadRequest  true  "Image content type"
// @Success      201      {object}  response.Response{data=models.ImageUploadResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /packages/{id}/images [post]
func (h *PackageHandler) NewImageUpload(c *gin.Context) {
	id := c.Param("id")

	var req models.ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	upload, err := h.service.NewImageUpload(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPackageNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, upload)
}
