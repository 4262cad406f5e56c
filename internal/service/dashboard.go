package service

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/pop_field_ops/internal/models"
)

const recentActivitiesLimit = 5

// SupplyAggregate - сумма поставок топлива за месяц
type SupplyAggregate struct {
	Month         string  `json:"month"`
	Count         int     `json:"count"`
	TotalCost     float64 `json:"total_cost"`
	TotalQuantity float64 `json:"total_quantity"`
}

// Dashboard - сводка по всем ресурсам
type Dashboard struct {
	Totals                   map[string]int     `json:"totals"`
	POPsByStatus             map[string]int     `json:"pops_by_status"`
	ActivitiesByStatus       map[string]int     `json:"activities_by_status"`
	ActivitiesByPriority     map[string]int     `json:"activities_by_priority"`
	ActivitiesByType         map[string]int     `json:"activities_by_type"`
	TechniciansByStatus      map[string]int     `json:"technicians_by_status"`
	GeneratorsByStatus       map[string]int     `json:"generators_by_status"`
	SuppliesByStatus         map[string]int     `json:"supplies_by_status"`
	ChecklistsByStatus       map[string]int     `json:"checklists_by_status"`
	SuppliesCurrentMonth     SupplyAggregate    `json:"supplies_current_month"`
	AverageChecklistProgress float64            `json:"average_checklist_progress"`
	RecentActivities         []*models.Activity `json:"recent_activities"`
	GeneratedAt              time.Time          `json:"generated_at"`
}

// Sources - источники данных сводки
type Sources struct {
	POPs        Repository[*models.POP]
	Activities  Repository[*models.Activity]
	Technicians Repository[*models.Technician]
	Supplies    Repository[*models.Supply]
	Generators  Repository[*models.Generator]
	Checklists  Repository[*models.Checklist]
}

// DashboardService пересчитывает сводку на каждый запрос, без кэширования
type DashboardService struct {
	src    Sources
	logger *logrus.Logger
	now    func() time.Time
}

func NewDashboardService(src Sources, deps Deps) *DashboardService {
	deps = deps.withDefaults()
	return &DashboardService{
		src:    src,
		logger: deps.Logger,
		now:    deps.Now,
	}
}

// GetDashboard собирает счетчики по категориям, поставки за текущий месяц и последние работы
func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "GetDashboard",
	})

	pops, err := s.src.POPs.All(ctx)
	if err != nil {
		return nil, s.fail(log, err, "pops")
	}
	activities, err := s.src.Activities.All(ctx)
	if err != nil {
		return nil, s.fail(log, err, "activities")
	}
	technicians, err := s.src.Technicians.All(ctx)
	if err != nil {
		return nil, s.fail(log, err, "technicians")
	}
	supplies, err := s.src.Supplies.All(ctx)
	if err != nil {
		return nil, s.fail(log, err, "supplies")
	}
	generators, err := s.src.Generators.All(ctx)
	if err != nil {
		return nil, s.fail(log, err, "generators")
	}
	checklists, err := s.src.Checklists.All(ctx)
	if err != nil {
		return nil, s.fail(log, err, "checklists")
	}

	now := s.now().UTC()
	d := &Dashboard{
		Totals: map[string]int{
			"pops":        len(pops),
			"activities":  len(activities),
			"technicians": len(technicians),
			"supplies":    len(supplies),
			"generators":  len(generators),
			"checklists":  len(checklists),
		},
		POPsByStatus:         countBy(pops, func(p *models.POP) string { return p.Status }),
		ActivitiesByStatus:   countBy(activities, func(a *models.Activity) string { return a.Status }),
		ActivitiesByPriority: countBy(activities, func(a *models.Activity) string { return a.Priority }),
		ActivitiesByType:     countBy(activities, func(a *models.Activity) string { return a.Type }),
		TechniciansByStatus:  countBy(technicians, func(t *models.Technician) string { return t.Status }),
		GeneratorsByStatus:   countBy(generators, func(g *models.Generator) string { return g.Status }),
		SuppliesByStatus:     countBy(supplies, func(s *models.Supply) string { return s.Status }),
		ChecklistsByStatus:   countBy(checklists, func(c *models.Checklist) string { return c.Status }),
		SuppliesCurrentMonth: monthlySupplies(supplies, now),
		RecentActivities:     recentActivities(activities, recentActivitiesLimit),
		GeneratedAt:          now,
	}

	if len(checklists) > 0 {
		sum := 0
		for _, c := range checklists {
			sum += c.Progress
		}
		d.AverageChecklistProgress = float64(sum) / float64(len(checklists))
	}

	log.Debug("Dashboard computed")
	return d, nil
}

func (s *DashboardService) fail(log *logrus.Entry, err error, resource string) error {
	log.WithError(err).WithField("resource", resource).Error("Failed to load records for dashboard")
	return errors.Wrapf(err, "service: could not load %s for dashboard", resource)
}

func countBy[T any](items []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, item := range items {
		out[key(item)]++
	}
	return out
}

// monthlySupplies суммирует неотмененные поставки текущего календарного месяца (UTC)
func monthlySupplies(supplies []*models.Supply, now time.Time) SupplyAggregate {
	agg := SupplyAggregate{Month: now.Format("2006-01")}
	for _, s := range supplies {
		if s.Status == models.SupplyStatusCancelled {
			continue
		}
		date := s.EffectiveDate().UTC()
		if date.Year() != now.Year() || date.Month() != now.Month() {
			continue
		}
		agg.Count++
		agg.TotalCost += s.Cost
		agg.TotalQuantity += s.Quantity
	}
	return agg
}

// recentActivities - n работ с наибольшими id по убыванию
func recentActivities(activities []*models.Activity, n int) []*models.Activity {
	sorted := make([]*models.Activity, len(activities))
	copy(sorted, activities)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
