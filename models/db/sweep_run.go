package dbmodels

// SweepRun отметка о выполненном авто-проставлении ABSENT за дату,
// защищает от повторного прогона при пропущенном или повторном тике
type SweepRun struct {
	BaseModel
	OrgID  string `gorm:"type:varchar(36);uniqueIndex:idx_sweep_run_org_date"`
	Date   string `gorm:"type:varchar(10);uniqueIndex:idx_sweep_run_org_date"` // YYYY-MM-DD
	Marked int
	Skipped int
}
