package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hydroseal/erp-backend-go/internal/domain/material"
	"github.com/hydroseal/erp-backend-go/internal/handler/http/response"
)

type MaterialHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	RecordMovement(w http.ResponseWriter, r *http.Request)
	StockLedger(w http.ResponseWriter, r *http.Request)
}

type materialHandlerImpl struct {
	materialService material.MaterialService
}

func NewMaterialHandler(materialService material.MaterialService) MaterialHandler {
	return &materialHandlerImpl{materialService: materialService}
}

func (h *materialHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req material.CreateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.materialService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Material created", result)
}

func (h *materialHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.materialService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *materialHandlerImpl) RecordMovement(w http.ResponseWriter, r *http.Request) {
	var req material.RecordMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.MaterialID = chi.URLParam(r, "id")

	result, err := h.materialService.RecordMovement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Stock movement recorded", result)
}

func (h *materialHandlerImpl) StockLedger(w http.ResponseWriter, r *http.Request) {
	result, err := h.materialService.StockLedger(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
