package http

import (
	"time"

	bizdomain "github.com/bizdir/backend/internal/business/domain"
)

type businessView struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
	AddedOn time.Time `json:"addedOn"`
}

type businessSummaryView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func toBusinessView(b bizdomain.Business) businessView {
	return businessView{
		ID:      string(b.ID),
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
		AddedOn: b.AddedOn,
	}
}

func toBusinessSummaryViews(businesses []bizdomain.Summary) []businessSummaryView {
	views := make([]businessSummaryView, 0, len(businesses))
	for _, b := range businesses {
		views = append(views, businessSummaryView{
			ID:      string(b.ID),
			Name:    b.Name,
			Address: b.Address,
			Phone:   b.Phone,
		})
	}
	return views
}
