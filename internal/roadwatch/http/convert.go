package http

import (
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
)

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func accountInfo(a domain.Account) roadwatchsdk.AccountInfo {
	return roadwatchsdk.AccountInfo{
		ID:             a.ID,
		Username:       a.Username,
		Email:          a.Email,
		AuthSource:     a.AuthSource,
		RoleID:         a.RoleID,
		FailedAttempts: a.FailedAttempts,
		Locked:         a.Locked,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func roleInfo(r domain.Role) roadwatchsdk.RoleInfo {
	return roadwatchsdk.RoleInfo{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}

func paramInfo(p domain.AuthParameter) roadwatchsdk.AuthParameterInfo {
	return roadwatchsdk.AuthParameterInfo{
		Key:         p.Key,
		Value:       p.Value,
		Description: p.Description,
		UpdatedAt:   p.UpdatedAt,
	}
}

func reportInfo(r domain.Report) roadwatchsdk.ReportInfo {
	return roadwatchsdk.ReportInfo{
		ID:          r.ID,
		Surface:     r.Surface,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		ReportedAt:  r.ReportedAt,
		PlaceID:     r.PlaceID,
		UserID:      r.UserID,
		ProblemType: r.ProblemType,
		Status:      r.Status,
		Description: r.Description,
		ExternalID:  r.ExternalID,
	}
}

func reportInput(req roadwatchsdk.ReportRequest) service.ReportInput {
	return service.ReportInput{
		Surface:     req.Surface,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ReportedAt:  req.ReportedAt,
		PlaceID:     req.PlaceID,
		UserID:      req.UserID,
		ProblemType: req.ProblemType,
		Status:      req.Status,
		Description: req.Description,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(roadwatchsdk.DateLayout)
}

// parseDate reads a DateLayout value in the local zone. An empty string is
// treated as absent.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(roadwatchsdk.DateLayout, *s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func workInfo(w domain.Work) roadwatchsdk.WorkInfo {
	return roadwatchsdk.WorkInfo{
		ID:         w.ID,
		ReportID:   w.ReportID,
		CompanyID:  w.CompanyID,
		Budget:     w.Budget,
		StartDate:  formatDate(w.StartDate),
		EndDate:    formatDate(w.EndDate),
		Progress:   w.Progress,
		ExternalID: w.ExternalID,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func workInput(req roadwatchsdk.WorkRequest) (service.WorkInput, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return service.WorkInput{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return service.WorkInput{}, err
	}
	return service.WorkInput{
		ReportID:  req.ReportID,
		CompanyID: req.CompanyID,
		Budget:    req.Budget,
		Progress:  req.Progress,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func historyInfo(e domain.WorkHistoryEntry) roadwatchsdk.WorkHistoryInfo {
	return roadwatchsdk.WorkHistoryInfo{
		ID:         e.ID,
		WorkID:     e.WorkID,
		ChangedAt:  e.ChangedAt,
		Progress:   e.Progress,
		Note:       e.Note,
		ExternalID: e.ExternalID,
	}
}

func historyInput(req roadwatchsdk.WorkHistoryRequest) service.HistoryInput {
	return service.HistoryInput{
		WorkID:    req.WorkID,
		ChangedAt: req.ChangedAt,
		Progress:  req.Progress,
		Note:      req.Note,
	}
}

func companyInfo(c domain.Company) roadwatchsdk.CompanyInfo {
	return roadwatchsdk.CompanyInfo{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func placeInfo(p domain.Place) roadwatchsdk.PlaceInfo {
	return roadwatchsdk.PlaceInfo{
		ID:          p.ID,
		Label:       p.Label,
		City:        p.City,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func placeInput(req roadwatchsdk.PlaceRequest) service.PlaceInput {
	return service.PlaceInput{Label: req.Label, City: req.City, Description: req.Description}
}

func sessionResponse(a domain.Account, s domain.Session) roadwatchsdk.SessionResponse {
	return roadwatchsdk.SessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		Account:   accountInfo(a),
	}
}
