package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/leave"
	"github.com/schoolhub/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	UpdateRequestStatus(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actingUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.CreateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := l.leaveService.CreateLeaveRequest(r.Context(), actor, chi.URLParam(r, "schoolSlug"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	actor, err := actingUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := l.leaveService.ListLeaveRequests(r.Context(), actor, chi.URLParam(r, "schoolSlug"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// UpdateRequestStatus implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := actingUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.UpdateStatusRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRequestStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "requestID")

	resp, err := l.leaveService.UpdateLeaveStatus(r.Context(), actor, chi.URLParam(r, "schoolSlug"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
