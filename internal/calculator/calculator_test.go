package calculator

import (
	"testing"

	"workpulse/internal/model"
	"workpulse/internal/parser"
)

func uniformProfile(t *testing.T, name string, w float64) model.Profile {
	t.Helper()
	weights := make(map[string]float64, model.DimensionCount)
	for _, d := range model.Dimensions {
		weights[string(d)] = w
	}
	p, err := model.ProfileFromMap(name, weights)
	if err != nil {
		t.Fatalf("build profile %s: %v", name, err)
	}
	return p
}

func testProfiles(t *testing.T) model.ProfileSet {
	t.Helper()
	return model.ProfileSet{
		Modelers: uniformProfile(t, model.ProfileModelers, 0.05),
		Cat12345: uniformProfile(t, model.ProfileCat12345, 0.1),
		Others:   uniformProfile(t, model.ProfileOthers, 0.2),
	}
}

func testRoster(t *testing.T) *model.Roster {
	t.Helper()
	r, err := model.BuildRoster([]model.PersonnelRow{
		{Email: "cad@x.co", Cat: "07-CAD"},
		{Email: "eng@x.co", Cat: "02-ENG"},
		{Email: "adm@x.co", Cat: "09-ADM"},
		{Email: "both@x.co", Cat: "03-ENG"},
	}, "x.co")
	if err != nil {
		t.Fatalf("build roster: %v", err)
	}
	return r
}

func TestBuildCoefficientMatrix_ProfilePrecedence(t *testing.T) {
	t.Parallel()

	roster := testRoster(t)
	cadUsers := []string{"cad@x.co", "both@x.co", "stranger@x.co"}
	matrix := BuildCoefficientMatrix(roster, testProfiles(t), cadUsers)

	if matrix.Len() != 4 {
		t.Fatalf("unexpected matrix size: %d", matrix.Len())
	}

	expect := func(email string, want float64) {
		row, ok := matrix.Lookup(email)
		if !ok {
			t.Fatalf("missing row for %s", email)
		}
		if row.Weights[0] != want {
			t.Fatalf("%s want weight %v got %v", email, want, row.Weights[0])
		}
	}
	expect("cad@x.co", 0.05) // CAD 清单 ∩ 名册
	expect("eng@x.co", 0.1)  // 类别 02
	expect("adm@x.co", 0.2)  // 默认
	expect("both@x.co", 0.1) // 类别 01..05 覆盖 CAD 归属

	if _, ok := matrix.Lookup("stranger@x.co"); ok {
		t.Fatalf("cad user outside roster must not get a row")
	}
}

func emptySources(month model.Month) SourceTables {
	return SourceTables{
		Chats:    model.NewSignalTable(month),
		Meetings: model.NewSignalTable(month),
		Autodesk: model.NewSignalTable(month),
		VPN:      model.NewSignalTable(month),
	}
}

func TestScoreDay_WeightedSumAndClamp(t *testing.T) {
	t.Parallel()

	month := model.Month{Year: 2025, Month: 2}
	roster := testRoster(t)
	matrix := BuildCoefficientMatrix(roster, testProfiles(t), nil)

	sources := emptySources(month)
	sources.Chats.Set("eng@x.co", "2025-02-10", 1)
	sources.VPN.Set("eng@x.co", "2025-02-10", 1)

	scorer := NewScorer(matrix, sources)
	records := scorer.scoreDay("2025-02-10", []parser.ActivityRow{
		{
			Email:        "ENG@x.co", // 打分前转小写
			Username:     "Eng",
			SentEmails:   3,
			EmailLastUse: "2025-02-10T08:30:00",
			DriveLastUse: "2025-02-09T21:00:00", // 非当天，不计
		},
	})
	if len(records) != 1 {
		t.Fatalf("unexpected record count: %d", len(records))
	}
	rec := records[0]
	if rec.Email != "eng@x.co" || rec.Cat != "02" {
		t.Fatalf("unexpected identity: %+v", rec)
	}
	// 活跃维度：Sent emails, Email last use, Chat, VPN = 4 × 0.1
	if rec.Productivity != 0.4 {
		t.Fatalf("unexpected productivity: %v", rec.Productivity)
	}
	if rec.Weighted[model.DimensionIndex(model.DimDriveLastUse)] != 0 {
		t.Fatalf("stale drive timestamp counted")
	}
}

func TestScoreDay_ClampToOne(t *testing.T) {
	t.Parallel()

	month := model.Month{Year: 2025, Month: 2}
	roster := testRoster(t)
	matrix := BuildCoefficientMatrix(roster, testProfiles(t), nil)

	sources := emptySources(month)
	for _, tab := range []*model.SignalTable{sources.Chats, sources.Meetings, sources.Autodesk, sources.VPN} {
		tab.Set("adm@x.co", "2025-02-10", 1)
	}

	scorer := NewScorer(matrix, sources)
	// adm 用 others 档 (0.2)：10 个维度全亮 = 2.0，截到 1
	records := scorer.scoreDay("2025-02-10", []parser.ActivityRow{
		{
			Email:           "adm@x.co",
			SentEmails:      5,
			EmailLastUse:    "2025-02-10T09:00:00",
			EditedFiles:     1,
			ViewedFiles:     2,
			DriveLastUse:    "2025-02-10T10:00:00",
			OtherAddedFiles: 1,
		},
	})
	if records[0].Productivity != 1 {
		t.Fatalf("score not clamped: %v", records[0].Productivity)
	}
}

func TestScoreDay_SymmetricDifference(t *testing.T) {
	t.Parallel()

	month := model.Month{Year: 2025, Month: 2}
	matrix := BuildCoefficientMatrix(testRoster(t), testProfiles(t), nil)
	scorer := NewScorer(matrix, emptySources(month))

	records := scorer.scoreDay("2025-02-10", []parser.ActivityRow{
		{Email: "eng@x.co", SentEmails: 1},
		{Email: "ghost@x.co", SentEmails: 1}, // 矩阵中无权重行
		{Email: "eng@x.co", SentEmails: 9},   // 重复邮箱只取首行
	})
	if len(records) != 1 {
		t.Fatalf("unexpected record count: %d", len(records))
	}
	if records[0].Email != "eng@x.co" {
		t.Fatalf("unexpected survivor: %s", records[0].Email)
	}
}

func TestScoreDay_AllZero(t *testing.T) {
	t.Parallel()

	month := model.Month{Year: 2025, Month: 2}
	matrix := BuildCoefficientMatrix(testRoster(t), testProfiles(t), nil)
	scorer := NewScorer(matrix, emptySources(month))

	records := scorer.scoreDay("2025-02-10", []parser.ActivityRow{
		{Email: "adm@x.co"},
	})
	if records[0].Productivity != 0 {
		t.Fatalf("idle day must score 0, got %v", records[0].Productivity)
	}
}

func TestScoreMonth_MissingDayFatal(t *testing.T) {
	t.Parallel()

	month := model.Month{Year: 2025, Month: 2}
	matrix := BuildCoefficientMatrix(testRoster(t), testProfiles(t), nil)
	scorer := NewScorer(matrix, emptySources(month))

	book := &parser.ActivityBook{Month: month, Sheets: map[string][]parser.ActivityRow{
		"2025-02-01": {},
	}}
	if _, err := scorer.ScoreMonth(book); err == nil {
		t.Fatalf("expected error for missing day sheet")
	}
}

func TestScoreMonth_FullMonth(t *testing.T) {
	t.Parallel()

	month := model.Month{Year: 2025, Month: 2}
	matrix := BuildCoefficientMatrix(testRoster(t), testProfiles(t), nil)
	scorer := NewScorer(matrix, emptySources(month))

	book := &parser.ActivityBook{Month: month, Sheets: map[string][]parser.ActivityRow{}}
	for _, day := range month.Days() {
		book.Sheets[day] = []parser.ActivityRow{{Email: "eng@x.co", SentEmails: 1}}
	}

	scores, err := scorer.ScoreMonth(book)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if len(scores.Sheets) != 28 {
		t.Fatalf("unexpected sheet count: %d", len(scores.Sheets))
	}
	sheet, ok := scores.Sheet("2025-02-15")
	if !ok || len(sheet.Records) != 1 {
		t.Fatalf("missing mid-month sheet")
	}
	if sheet.Records[0].Productivity != 0.1 {
		t.Fatalf("unexpected score: %v", sheet.Records[0].Productivity)
	}
}

func TestBuildFinalReport(t *testing.T) {
	t.Parallel()

	month := model.Month{Year: 2025, Month: 2}
	roster := testRoster(t)

	scores := &model.DailyScores{Month: month}
	for _, day := range month.Days() {
		sheet := model.DailySheet{Day: day}
		sheet.Records = append(sheet.Records, model.DailyRecord{
			Email: "eng@x.co", Username: "Eng", Cat: "02", Productivity: 0.5,
		})
		if day == "2025-02-10" {
			// 只在 10 号出现、月末清单没有的员工
			sheet.Records = append(sheet.Records, model.DailyRecord{
				Email: "temp@x.co", Cat: "09", Productivity: 0.9,
			})
		}
		scores.Sheets = append(scores.Sheets, sheet)
	}

	report, err := BuildFinalReport(scores, roster)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("unexpected row count: %d", len(report.Rows))
	}
	row := report.Rows[0]
	if row.Email != "eng@x.co" || row.Cat != "02" {
		t.Fatalf("unexpected row identity: %+v", row)
	}
	if row.Scores["01"] != 0.5 || row.Scores["28"] != 0.5 {
		t.Fatalf("scores not keyed by day number: %v", row.Scores)
	}
	if _, ok := row.Scores["29"]; ok {
		t.Fatalf("february must not have day 29")
	}
}

func TestBuildFinalReport_MissingLastDay(t *testing.T) {
	t.Parallel()

	month := model.Month{Year: 2025, Month: 2}
	scores := &model.DailyScores{Month: month, Sheets: []model.DailySheet{{Day: "2025-02-01"}}}
	if _, err := BuildFinalReport(scores, testRoster(t)); err == nil {
		t.Fatalf("expected error for missing last day sheet")
	}
}

func TestDayColumn(t *testing.T) {
	t.Parallel()

	if got := dayColumn("2025-02-05"); got != "05" {
		t.Fatalf("unexpected column: %q", got)
	}
	if got := dayColumn("2025-12-31"); got != "31" {
		t.Fatalf("unexpected column: %q", got)
	}
}
