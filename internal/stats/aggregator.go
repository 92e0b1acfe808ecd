package stats

import (
	"time"

	"github.com/shenikar/wildfire_sync_engine/internal/models"
)

// recentWindow - скользящее окно "недавних" репортов
const recentWindow = 24 * time.Hour

// Aggregate вычисляет сводку по коллекции инцидентов. Чистая функция без сети и
// скрытого состояния. "Недавние" считаются относительно момента агрегации (now),
// а не момента выборки: повторные вызовы по тому же набору могут давать разный
// Recent по мере сдвига окна - это определённое поведение.
func Aggregate(incidents []*models.Incident, now time.Time) models.Statistics {
	cutoff := now.Add(-recentWindow)

	result := models.Statistics{Total: len(incidents)}
	for _, incident := range incidents {
		if incident.IsActive() {
			result.Active++
		}
		if incident.ReportedAt.After(cutoff) {
			result.Recent++
		}
		switch incident.Status {
		case models.StatusControlled:
			result.Controlled++
		case models.StatusExtinguished:
			result.Extinguished++
		}
		// Отсутствующая площадь трактуется как ноль
		result.TotalAffectedArea += incident.AffectedArea
	}
	return result
}
