package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/policy"
	"github.com/schoolhub/attendance-backend-go/internal/handler/http/response"
)

type PolicyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type PolicyHandlerImpl struct {
	policyService policy.PolicyService
}

func NewPolicyHandler(policyService policy.PolicyService) PolicyHandler {
	return &PolicyHandlerImpl{policyService: policyService}
}

// List implements PolicyHandler.
func (p *PolicyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actingUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	policies, err := p.policyService.ListPolicies(r.Context(), actor, chi.URLParam(r, "schoolSlug"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policies)
}
