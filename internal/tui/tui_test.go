package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/reviewr/internal/cli"
	"github.com/sadopc/reviewr/internal/config"
	"github.com/sadopc/reviewr/internal/model"
	"github.com/sadopc/reviewr/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestApp(t *testing.T) (App, *store.Store) {
	t.Helper()
	s := newTestStore(t)
	m, _ := NewApp(s, config.DefaultConfig(), nil).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App), s
}

func keyPress(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// run executes cmd and feeds every message it produces back into app.
func run(t *testing.T, app App, cmd tea.Cmd) App {
	t.Helper()
	if cmd == nil {
		return app
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			app = run(t, app, c)
		}
		return app
	}
	m, next := app.Update(msg)
	app = m.(App)
	return run(t, app, next)
}

// ============================================================
// Helpers
// ============================================================

func TestViewNames(t *testing.T) {
	expected := []string{"Dashboard", "Weekly", "Monthly", "Debts", "History", "Settings"}
	if len(viewNames) != len(expected) {
		t.Fatalf("expected %d view names, got %d", len(expected), len(viewNames))
	}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewDashboard != 0 || viewWeekly != 1 || viewMonthly != 2 || viewDebts != 3 || viewHistory != 4 || viewSettings != 5 {
		t.Fatal("view state constants out of order")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"1500", 1500, false},
		{"1,350,000", 1350000, false},
		{" 12.5 ", 12.5, false},
		{"-200", -200, false},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAmountField(t *testing.T) {
	if got := amountField(0); got != "" {
		t.Fatalf("zero should render blank, got %q", got)
	}
	if got := amountField(1350000); got != "1350000" {
		t.Fatalf("got %q", got)
	}
	if got := amountField(12.5); got != "12.5" {
		t.Fatalf("got %q", got)
	}
}

func TestPositiveValidators(t *testing.T) {
	if positiveAmount("0") == nil || positiveAmount("-5") == nil || positiveAmount("x") == nil {
		t.Fatal("positiveAmount should reject zero, negatives and garbage")
	}
	if err := positiveAmount("130"); err != nil {
		t.Fatal(err)
	}
	if positiveInt("0") == nil || positiveInt("2.5") == nil {
		t.Fatal("positiveInt should reject zero and fractions")
	}
	if err := positiveInt("4"); err != nil {
		t.Fatal(err)
	}
}

// ============================================================
// Weekly model
// ============================================================

func TestEditableStrategyLegacy(t *testing.T) {
	sessions := 2
	w := model.WeeklyRecord{
		ID: "2024-01-07",
		Outcome: model.LegacyWeek{
			JobProgress: model.NewTagSet(model.LeverageRecruiter),
		},
		MuayThaiSessions: &sessions,
	}

	s := editableStrategy(w)
	if !s.Leverage.Contains(model.LeverageRecruiter) {
		t.Fatal("legacy job progress should carry into leverage")
	}
	if s.Energy != 2 {
		t.Fatalf("energy = %d, want legacy sessions 2", s.Energy)
	}
}

func TestWeeklyReviewedSentinelWins(t *testing.T) {
	s := newTestStore(t)
	m := newWeeklyModel(s, 4)
	m.week = model.NewWeek(time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local))

	*m.leverage = []string{string(model.LeverageApplicationSent), string(model.LeverageNone)}
	*m.decision = []string{string(model.DecisionLedProduct)}
	*m.frontend = nil
	*m.energy = 1
	*m.notes = "  busy week \n"

	w := m.reviewed()
	st, ok := w.Strategy()
	if !ok {
		t.Fatal("reviewed week should be current shape")
	}
	if !st.Leverage.IsNone() {
		t.Fatal("picking the sentinel should give the none marker")
	}
	if st.Decision.Count() != 1 || !st.Frontend.IsEmpty() {
		t.Fatalf("unexpected tags: %+v", st)
	}
	if st.Energy != 1 {
		t.Fatalf("energy = %d", st.Energy)
	}
	if w.ReviewNotes != "busy week" {
		t.Fatalf("notes = %q", w.ReviewNotes)
	}
}

func TestWeeklyReviewedRecalibrationNeedsBoth(t *testing.T) {
	s := newTestStore(t)
	m := newWeeklyModel(s, 4)

	*m.weight = string(model.WeightFriction)
	*m.word = ""
	if m.reviewed().Recalibration != nil {
		t.Fatal("recalibration needs both weight and word")
	}

	*m.word = string(model.WordSteady)
	r := m.reviewed().Recalibration
	if r == nil || r.Weight != model.WeightFriction || r.Word != model.WordSteady {
		t.Fatalf("recalibration = %+v", r)
	}
}

func TestWeeklySubmittedRejectsEdit(t *testing.T) {
	s := newTestStore(t)
	m := newWeeklyModel(s, 4)
	m.week.Submitted = true

	m, cmd := m.update(keyPress("s"))
	if m.formActive {
		t.Fatal("submitted week should not open a form")
	}
	msg, ok := cmd().(statusMsg)
	if !ok || !msg.isError {
		t.Fatalf("expected error status, got %#v", msg)
	}
}

func TestWeeklyViewShowsVerdict(t *testing.T) {
	s := newTestStore(t)
	m := newWeeklyModel(s, 4)
	m.setSize(120, 40)
	m.week = m.week.WithStrategy(model.Strategy{Energy: 0})

	out := m.view()
	if !strings.Contains(out, "Do better") {
		t.Fatal("week with no energy should show Do better")
	}
}

// ============================================================
// Monthly model
// ============================================================

func TestMonthlyApplyFields(t *testing.T) {
	s := newTestStore(t)
	m := newMonthlyModel(s, config.DefaultConfig())
	m.month = model.NewMonth("2025-03")
	m.month.Expenses.Food = 9000

	*m.fields["income"] = "200,000"
	*m.fields["emergency"] = "50000"
	*m.fields["travel"] = "250"
	*m.fields["rent"] = "45000"

	out := m.applyFields()
	if out.Income != 200000 || out.EmergencyFund != 50000 || out.TravelFund != 250 || out.Expenses.Rent != 45000 {
		t.Fatalf("fields not applied: %+v", out)
	}
	if out.Expenses.Food != 9000 {
		t.Fatal("fields outside the form must survive")
	}
	if m.month.Income != 0 {
		t.Fatal("applyFields must not mutate the stored month")
	}
}

func TestMonthlyApplyEntry(t *testing.T) {
	s := newTestStore(t)
	m := newMonthlyModel(s, config.DefaultConfig())
	m.month = model.NewMonth("2025-03")

	*m.entryKind = entryExtraIncome
	*m.entryLabel = "Freelance"
	*m.entryValue = "15000"
	m.month = m.applyEntry()
	if len(m.month.ExtraIncome) != 1 || m.month.ExtraIncome[0].Amount != 15000 {
		t.Fatalf("extra income = %+v", m.month.ExtraIncome)
	}

	*m.entryKind = budgetPrefix + "Transport"
	*m.entryLabel = "Fuel"
	*m.entryValue = "3000"
	m.month = m.applyEntry()
	*m.entryLabel = "Parking"
	*m.entryValue = "500"
	m.month = m.applyEntry()
	if len(m.month.Budgets) != 1 {
		t.Fatalf("expected one Transport budget, got %d", len(m.month.Budgets))
	}
	if got := m.month.Budgets[0].Spent(); got != 3500 {
		t.Fatalf("budget spent = %v, want 3500", got)
	}

	*m.entryKind = entryOneOff
	*m.entryLabel = "Dentist"
	*m.entryValue = "8000"
	m.month = m.applyEntry()
	if len(m.month.OneOffs) != 1 {
		t.Fatal("one-off not added")
	}
}

func TestBudgetCategories(t *testing.T) {
	s := newTestStore(t)
	m := newMonthlyModel(s, config.DefaultConfig())
	m.month.Budgets = []model.BudgetEntry{{Category: "Gym"}, {Category: "Transport"}}

	cats := m.budgetCategories()
	if cats[0] != "Gym" || cats[1] != "Transport" {
		t.Fatalf("existing categories should come first: %v", cats)
	}
	count := 0
	for _, c := range cats {
		if c == "Transport" {
			count++
		}
	}
	if count != 1 {
		t.Fatal("presets already in use should not repeat")
	}
}

func TestMonthlySubmittedLocksKeys(t *testing.T) {
	s := newTestStore(t)
	m := newMonthlyModel(s, config.DefaultConfig())
	m.month.Submitted = true

	for _, k := range []string{"a", "s"} {
		_, cmd := m.update(keyPress(k))
		if cmd == nil {
			t.Fatalf("key %q should report the lock", k)
		}
		if msg, ok := cmd().(statusMsg); !ok || !msg.isError {
			t.Fatalf("key %q: expected error status", k)
		}
	}
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		id    string
		delta int
		want  string
	}{
		{"2025-12", 1, "2026-01"},
		{"2025-01", -1, "2024-12"},
		{"2025-03", 0, "2025-03"},
		{"garbage", 1, "garbage"},
	}
	for _, tt := range tests {
		if got := shiftMonth(tt.id, tt.delta); got != tt.want {
			t.Errorf("shiftMonth(%q, %d) = %q, want %q", tt.id, tt.delta, got, tt.want)
		}
	}
}

func TestMonthlySubmitAdvancesToNextMonth(t *testing.T) {
	app, s := newTestApp(t)
	now := time.Now()
	cur := model.NewMonth(model.MonthKey(now))
	cur.Income = 120000
	cur.EmergencyFund = 50000
	if err := s.PutMonth(cur); err != nil {
		t.Fatal(err)
	}
	app = run(t, app, app.Init())
	app.activeView = viewMonthly

	next, cmd := app.monthly.submit(now)
	app.monthly = next
	app = run(t, app, cmd)

	want := shiftMonth(cur.Month, 1)
	if app.monthly.month.Month != want {
		t.Fatalf("monthly view shows %s, want %s", app.monthly.month.Month, want)
	}
	if app.monthly.month.Submitted {
		t.Fatal("the next month should be open for editing")
	}
	if app.debts.month.Month != want {
		t.Fatalf("debts view shows %s, want %s", app.debts.month.Month, want)
	}
	if !strings.Contains(app.View(), cli.FormatMonth(want)) {
		t.Fatal("view should render the next month")
	}
	got, err := s.Month(cur.Month)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Submitted {
		t.Fatal("submitted month should be locked in the store")
	}
}

func TestMonthNavigation(t *testing.T) {
	app, _ := newTestApp(t)
	app = run(t, app, app.Init())
	app.activeView = viewMonthly
	cur := app.monthly.month.Month

	press := func(k string) {
		next, cmd := app.Update(keyPress(k))
		app = run(t, next.(App), cmd)
	}

	press("]")
	if app.monthly.month.Month != cur {
		t.Fatal("moving past an unstarted current month should be refused")
	}
	if app.status != "Start this month before moving on" {
		t.Fatalf("status = %q", app.status)
	}

	press("[")
	if app.monthly.month.Month != shiftMonth(cur, -1) {
		t.Fatalf("prev should show %s, got %s", shiftMonth(cur, -1), app.monthly.month.Month)
	}
	if app.debts.month.Month != shiftMonth(cur, -1) {
		t.Fatal("debts view should follow the month")
	}

	press("]")
	if app.monthly.month.Month != cur {
		t.Fatalf("next should return to %s, got %s", cur, app.monthly.month.Month)
	}
}

// ============================================================
// Debts model
// ============================================================

func TestDebtsWithDebt(t *testing.T) {
	s := newTestStore(t)
	d := newDebtsModel(s, config.DefaultConfig())
	d.month = model.NewMonth("2025-03")

	debt := model.NewDebt()
	debt.MonthlyPayment = 5000
	d.month = d.withDebt(debt)
	if len(d.month.Debts) != 1 {
		t.Fatal("new debt should be appended")
	}

	debt.MonthlyPayment = 7000
	d.month = d.withDebt(debt)
	if len(d.month.Debts) != 1 || d.month.Debts[0].MonthlyPayment != 7000 {
		t.Fatalf("existing debt should be replaced: %+v", d.month.Debts)
	}

	d.month = d.withoutDebt(debt.ID)
	if len(d.month.Debts) != 0 {
		t.Fatal("debt should be removed")
	}
}

func TestDebtsFormDebt(t *testing.T) {
	s := newTestStore(t)
	d := newDebtsModel(s, config.DefaultConfig())
	d.editingID = "abc"
	*d.formLabel = "  "
	*d.formDebtType = "Payday"
	*d.formBalance = "40,000"
	*d.formPayment = "4000"
	*d.formRate = "24"

	debt := d.formDebt()
	if debt.ID != "abc" || debt.Type != model.DebtOther || debt.Balance != 40000 || debt.InterestRate != 24 {
		t.Fatalf("formDebt = %+v", debt)
	}
	if debt.Name() != string(model.DebtOther) {
		t.Fatalf("blank label should fall back to type, got %q", debt.Name())
	}
}

func TestDebtsDeletePersists(t *testing.T) {
	app, s := newTestApp(t)
	m := model.NewMonth(model.MonthKey(time.Now()))
	m.Debts = []model.DebtEntry{{ID: "d1", Type: model.DebtCarLoan, MonthlyPayment: 9000}}
	if err := s.PutMonth(m); err != nil {
		t.Fatal(err)
	}
	app = run(t, app, app.Init())
	app.activeView = viewDebts

	next, cmd := app.Update(keyPress("d"))
	app = run(t, next.(App), cmd)

	got, err := s.Month(m.Month)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Debts) != 0 {
		t.Fatalf("debt should be deleted from store, got %+v", got.Debts)
	}
	if app.status != "Debt removed" {
		t.Fatalf("status = %q", app.status)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("a very long debt name", 8); got != "a very …" {
		t.Fatalf("got %q", got)
	}
}

// ============================================================
// History model
// ============================================================

func TestHistoryPaging(t *testing.T) {
	h := newHistoryModel(config.DefaultConfig())
	h.setSize(120, 40)

	d := model.EmptyAppData()
	for i := 1; i <= 8; i++ {
		id := time.Date(2024, time.Month(i), 1, 0, 0, 0, 0, time.UTC).Format(model.MonthKeyLayout)
		m := model.NewMonth(id)
		m.Submitted = true
		m.EmergencyFund = float64(i * 1000)
		d.Months[id] = m
	}
	h.setData(d, config.DefaultConfig())

	if h.maxOffset() != 1 {
		t.Fatalf("maxOffset = %d, want 1", h.maxOffset())
	}
	page := h.page()
	if len(page) != chartMonths {
		t.Fatalf("page len = %d", len(page))
	}
	if page[0].Month != "2024-03" || page[len(page)-1].Month != "2024-08" {
		t.Fatalf("first page should run oldest to newest: %s..%s", page[0].Month, page[len(page)-1].Month)
	}

	h, _ = h.update(tea.KeyMsg{Type: tea.KeyLeft})
	if h.offset != 1 || len(h.page()) != 2 {
		t.Fatalf("older page: offset=%d len=%d", h.offset, len(h.page()))
	}
	h, _ = h.update(tea.KeyMsg{Type: tea.KeyLeft})
	if h.offset != 1 {
		t.Fatal("offset should stop at the oldest page")
	}
}

// ============================================================
// Settings model
// ============================================================

func TestSettingsFormConfig(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s, config.DefaultConfig(), nil)

	*m.emergency = "2,000,000"
	*m.car = "1500000"
	*m.travel = "3000"
	*m.lifestyleLock = "500000"
	*m.emergencyMin = "60000"
	*m.travelMin = "300"
	*m.targetActions = "5"
	*m.foreignRate = "129.5"

	cfg := m.formConfig()
	if cfg.Goals.Emergency != 2000000 || cfg.Goals.Travel != 3000 || cfg.Rules.TargetActions != 5 || cfg.Currency.ForeignRate != 129.5 {
		t.Fatalf("formConfig = %+v", cfg)
	}
	if cfg.Mirror.Table != "user_data" {
		t.Fatal("fields outside the form must survive")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestSettingsSyncTimes(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s, config.DefaultConfig(), nil)

	msg := m.refresh()().(syncTimesMsg)
	if msg.lastPush != "never" || msg.lastPull != "never" {
		t.Fatalf("fresh store should report never: %+v", msg)
	}

	if err := s.MarkSynced(store.SettingLastPush, time.Now()); err != nil {
		t.Fatal(err)
	}
	msg = m.refresh()().(syncTimesMsg)
	if msg.lastPush == "never" {
		t.Fatal("push time should be reported")
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	app, _ := newTestApp(t)

	if app.activeView != viewDashboard {
		t.Fatal("default view should be dashboard")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppViewStates(t *testing.T) {
	app, _ := newTestApp(t)
	app = run(t, app, app.Init())

	for v := range viewNames {
		app.activeView = viewState(v)
		if output := app.View(); output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppTabCycles(t *testing.T) {
	app, _ := newTestApp(t)
	for i := 0; i < len(viewNames); i++ {
		next, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
		app = next.(App)
	}
	if app.activeView != viewDashboard {
		t.Fatalf("tab should wrap around, got %d", app.activeView)
	}
}

func TestAppAppliesSnapshot(t *testing.T) {
	app, s := newTestApp(t)

	w, err := s.CurrentWeek(time.Now())
	if err != nil {
		t.Fatal(err)
	}
	w = w.WithStrategy(model.Strategy{
		Leverage: model.NewTagSet(model.LeverageInterview),
		Frontend: model.NewTagSet(model.FrontendNewFeature),
		Energy:   2,
	})
	if _, err := s.SubmitWeek(w); err != nil {
		t.Fatal(err)
	}

	app = run(t, app, app.Init())

	if app.dashboard.dash.LatestWeek == nil || app.dashboard.dash.LatestWeek.ID != w.ID {
		t.Fatal("dashboard should show the submitted week")
	}
	if app.weekly.week.ID == w.ID {
		t.Fatal("weekly view should advance past the submitted week")
	}
	if !strings.Contains(app.View(), "reviewr") {
		t.Fatal("header should carry the app title")
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	app, _ := newTestApp(t)

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppLoadingState(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, config.DefaultConfig(), nil)
	// Width 0 means not yet sized
	if output := app.View(); output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppStatusMessage(t *testing.T) {
	app, _ := newTestApp(t)
	next, _ := app.Update(statusMsg{text: "test status"})
	app = next.(App)

	if !strings.Contains(app.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}
}

func TestAppConfigSaved(t *testing.T) {
	app, _ := newTestApp(t)
	cfg := config.DefaultConfig()
	cfg.Rules.TargetActions = 9

	next, cmd := app.Update(configSavedMsg{cfg: cfg})
	app = run(t, next.(App), cmd)

	if app.cfg.Rules.TargetActions != 9 || app.weekly.target != 9 {
		t.Fatal("saved config should reach the views")
	}
	if app.status != "Settings saved" {
		t.Fatalf("status = %q", app.status)
	}
}

func TestAppExportPicker(t *testing.T) {
	app, _ := newTestApp(t)

	next, _ := app.Update(keyPress("E"))
	app = next.(App)
	if !app.exportPicking {
		t.Fatal("E should open the export picker")
	}

	next, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = next.(App)
	if app.exportPicking {
		t.Fatal("esc should close the export picker")
	}
}

func TestAppDoExport(t *testing.T) {
	app, _ := newTestApp(t)
	dir := t.TempDir()

	for format, ext := range []string{".csv", ".csv", ".json", ".yaml"} {
		msg := app.doExport(format, dir)()
		done, ok := msg.(exportDoneMsg)
		if !ok {
			t.Fatalf("format %d: expected exportDoneMsg, got %#v", format, msg)
		}
		if filepath.Ext(done.path) != ext {
			t.Fatalf("format %d: path %s", format, done.path)
		}
		if _, err := os.Stat(done.path); err != nil {
			t.Fatalf("format %d: %v", format, err)
		}
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test, just verify they render)
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"stable", func() string { return stableStyle.Render("test") }},
		{"monitoring", func() string { return monitoringStyle.Render("test") }},
		{"action", func() string { return actionStyle.Render("test") }},
		{"locked", func() string { return lockedStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		{"normalItem", func() string { return normalItemStyle.Render("test") }},
	}

	for _, s := range styles {
		if s.fn() == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
