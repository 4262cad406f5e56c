package v1

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/pop_field_ops/internal/models"
)

// parseListQuery читает page, limit, busca и разрешенные фильтры.
// Некорректные числа превращаются в 0 и заменяются значениями по умолчанию в сервисе.
func parseListQuery(c *gin.Context, filters []string) models.ListQuery {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	q := models.ListQuery{
		Search:  c.Query("busca"),
		Page:    page,
		Limit:   limit,
		Filters: make(map[string]string),
	}
	for _, key := range filters {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			q.Filters[key] = v
		}
	}
	return q
}

// parseID берет id из пути или из параметра запроса ?id=
func parseID(c *gin.Context) (int64, bool, error) {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("id")
	}
	if raw == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, true, strconv.ErrSyntax
	}
	return id, true, nil
}
