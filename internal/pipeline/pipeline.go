// Package pipeline orchestrates the generation stages into complete runs
// and persists the resulting tables as CSV files.
package pipeline

import (
	"fmt"

	"github.com/cashsight/simulator/internal/logger"
	"github.com/cashsight/simulator/internal/models"
	"github.com/cashsight/simulator/internal/simulation"
)

// Defaults for the run parameters, overridable through Options.
const (
	DefaultHistoricalMonthsOut = 120
	DefaultFullMonthsOut       = 24
	DefaultVendorCount         = 50
	DefaultVendorInvoiceMin    = 50
	DefaultVendorInvoiceMax    = 300
	DefaultDailyInvoiceMin     = 5
	DefaultDailyInvoiceMax     = 15
)

// Options tunes a pipeline run. Zero values fall back to the defaults for
// the run kind.
type Options struct {
	MonthsOut        int
	UserCount        int // <= 0 draws a random head count
	VendorCount      int
	VendorInvoiceMin int
	VendorInvoiceMax int
}

func (o Options) withDefaults(monthsOut, invMin, invMax int) Options {
	if o.MonthsOut <= 0 {
		o.MonthsOut = monthsOut
	}
	if o.VendorCount <= 0 {
		o.VendorCount = DefaultVendorCount
	}
	if o.VendorInvoiceMin <= 0 {
		o.VendorInvoiceMin = invMin
	}
	if o.VendorInvoiceMax <= 0 {
		o.VendorInvoiceMax = invMax
	}
	if o.VendorInvoiceMax < o.VendorInvoiceMin {
		o.VendorInvoiceMax = o.VendorInvoiceMin
	}
	return o
}

// Dataset holds every generated table for one run. Invoice, receipt and
// check tables carry the ledger back-references.
type Dataset struct {
	Properties       []models.Property
	Units            []models.Unit
	Tenants          []models.Tenant
	Vendors          []models.Vendor
	Users            []models.User
	Leases           []models.Lease
	Schedule         []models.BillingScheduleEntry
	CustomerInvoices []models.CustomerInvoice
	VendorInvoices   []models.VendorInvoice
	Checks           []models.CheckRegisterEntry
	Receipts         []models.Receipt
	GLEntries        []models.GLEntry
}

// Pipeline wires a generator to an output directory.
type Pipeline struct {
	gen *simulation.Generator
	log *logger.Logger
	dir string
}

// New creates a pipeline writing tables under dir.
func New(gen *simulation.Generator, log *logger.Logger, dir string) *Pipeline {
	return &Pipeline{gen: gen, log: log, dir: dir}
}

// RunHistorical builds the long-horizon dataset: the schedule is projected
// far out and then truncated to entries that fell due before the as-of
// date, so every derived document is in the past. All tables are written
// in replace mode.
func (p *Pipeline) RunHistorical(properties []models.Property, coa []models.Account, opts Options) (*Dataset, error) {
	opts = opts.withDefaults(DefaultHistoricalMonthsOut, DefaultVendorInvoiceMin, DefaultVendorInvoiceMax)
	ds, err := p.generate(properties, coa, opts, true)
	if err != nil {
		return nil, err
	}
	if err := p.writeAll(ds, ModeReplace); err != nil {
		return nil, err
	}
	p.log.Info("historical run complete", p.counts(ds))
	return ds, nil
}

// RunFull builds the full-sample dataset with the schedule left unfiltered,
// including entries that fall due after the as-of date. All tables are
// written in replace mode.
func (p *Pipeline) RunFull(properties []models.Property, coa []models.Account, opts Options) (*Dataset, error) {
	opts = opts.withDefaults(DefaultFullMonthsOut, DefaultVendorInvoiceMin, DefaultVendorInvoiceMax)
	ds, err := p.generate(properties, coa, opts, false)
	if err != nil {
		return nil, err
	}
	if err := p.writeAll(ds, ModeReplace); err != nil {
		return nil, err
	}
	p.log.Info("full-sample run complete", p.counts(ds))
	return ds, nil
}

func (p *Pipeline) generate(properties []models.Property, coa []models.Account, opts Options, pastOnly bool) (*Dataset, error) {
	if len(properties) == 0 {
		return nil, fmt.Errorf("no properties to simulate")
	}

	var users []models.User
	var err error
	if opts.UserCount > 0 {
		users, err = p.gen.Users(opts.UserCount)
	} else {
		users, err = p.gen.UsersDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("generate users: %w", err)
	}

	vendors := p.gen.Vendors(users, opts.VendorCount)
	units := p.gen.Units(properties)
	tenants, err := p.gen.Tenants(properties, units)
	if err != nil {
		return nil, fmt.Errorf("generate tenants: %w", err)
	}
	leases := p.gen.Leases(properties, tenants, units)

	schedule := p.gen.Schedule(leases, opts.MonthsOut)
	if pastOnly {
		schedule = simulation.ScheduleDueBefore(schedule, p.gen.AsOf())
	}

	custInvoices := p.gen.CustomerInvoices(schedule, leases, tenants)
	vendInvoices := p.gen.VendorInvoices(vendors, properties, leases, coa, opts.VendorInvoiceMin, opts.VendorInvoiceMax)

	checks, vendInvoices := p.gen.Checks(vendInvoices)
	receipts, custInvoices := p.gen.Receipts(custInvoices)

	posted := p.gen.PostLedger(custInvoices, vendInvoices, receipts, checks, coa)

	return &Dataset{
		Properties:       properties,
		Units:            units,
		Tenants:          tenants,
		Vendors:          vendors,
		Users:            users,
		Leases:           leases,
		Schedule:         schedule,
		CustomerInvoices: posted.CustomerInvoices,
		VendorInvoices:   posted.VendorInvoices,
		Checks:           posted.Checks,
		Receipts:         posted.Receipts,
		GLEntries:        posted.Entries,
	}, nil
}

// RunDaily reads the base entities back from a previous historical run,
// replays the billing schedule to find entries falling due on the as-of
// day, and appends the day's documents to the transactional tables.
func (p *Pipeline) RunDaily(coa []models.Account, opts Options) (*Dataset, error) {
	opts = opts.withDefaults(DefaultHistoricalMonthsOut, DefaultDailyInvoiceMin, DefaultDailyInvoiceMax)

	properties, vendors, tenants, leases, err := p.loadBase()
	if err != nil {
		return nil, err
	}

	schedule := p.gen.Schedule(leases, opts.MonthsOut)
	todays := simulation.ScheduleDueOn(schedule, p.gen.AsOf())

	custInvoices := p.gen.CustomerInvoices(todays, leases, tenants)
	vendInvoices := p.gen.DailyVendorInvoices(vendors, properties, coa, opts.VendorInvoiceMin, opts.VendorInvoiceMax)

	checks, vendInvoices := p.gen.Checks(vendInvoices)
	receipts, custInvoices := p.gen.Receipts(custInvoices)

	posted := p.gen.PostLedger(custInvoices, vendInvoices, receipts, checks, coa)

	ds := &Dataset{
		Properties:       properties,
		Tenants:          tenants,
		Vendors:          vendors,
		Leases:           leases,
		Schedule:         todays,
		CustomerInvoices: posted.CustomerInvoices,
		VendorInvoices:   posted.VendorInvoices,
		Checks:           posted.Checks,
		Receipts:         posted.Receipts,
		GLEntries:        posted.Entries,
	}

	if err := p.appendDaily(ds); err != nil {
		return nil, err
	}
	p.log.Info("daily run complete", map[string]interface{}{
		"cust_invoices": len(ds.CustomerInvoices),
		"vend_invoices": len(ds.VendorInvoices),
		"receipts":      len(ds.Receipts),
		"checks":        len(ds.Checks),
		"gl_entries":    len(ds.GLEntries),
	})
	return ds, nil
}

func (p *Pipeline) loadBase() ([]models.Property, []models.Vendor, []models.Tenant, []models.Lease, error) {
	propRows, err := readTable(p.dir, TableProperties)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load properties: %w", err)
	}
	properties := make([]models.Property, 0, len(propRows))
	for _, row := range propRows {
		prop, err := parseProperty(row)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		properties = append(properties, prop)
	}

	vendRows, err := readTable(p.dir, TableVendors)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load vendors: %w", err)
	}
	vendors := make([]models.Vendor, 0, len(vendRows))
	for _, row := range vendRows {
		v, err := parseVendor(row)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		vendors = append(vendors, v)
	}

	tenantRows, err := readTable(p.dir, TableTenants)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load tenants: %w", err)
	}
	tenants := make([]models.Tenant, 0, len(tenantRows))
	for _, row := range tenantRows {
		t, err := parseTenant(row)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		tenants = append(tenants, t)
	}

	leaseRows, err := readTable(p.dir, TableLeases)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load leases: %w", err)
	}
	leases := make([]models.Lease, 0, len(leaseRows))
	for _, row := range leaseRows {
		l, err := parseLease(row)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		leases = append(leases, l)
	}

	return properties, vendors, tenants, leases, nil
}

func (p *Pipeline) writeAll(ds *Dataset, mode WriteMode) error {
	writes := []struct {
		table  string
		header []string
		rows   [][]string
	}{
		{TableProperties, propertyHeader, mapRows(ds.Properties, propertyRecord)},
		{TableUnits, unitHeader, mapRows(ds.Units, unitRecord)},
		{TableTenants, tenantHeader, mapRows(ds.Tenants, tenantRecord)},
		{TableVendors, vendorHeader, mapRows(ds.Vendors, vendorRecord)},
		{TableUsers, userHeader, mapRows(ds.Users, userRecord)},
		{TableLeases, leaseHeader, mapRows(ds.Leases, leaseRecord)},
		{TablePaymentSchedule, scheduleHeader, mapRows(ds.Schedule, scheduleRecord)},
		{TableCustInvoices, custInvoiceHeader, mapRows(ds.CustomerInvoices, custInvoiceRecord)},
		{TableVendInvoices, vendInvoiceHeader, mapRows(ds.VendorInvoices, vendInvoiceRecord)},
		{TableCheckReg, checkRegHeader, mapRows(ds.Checks, checkRegRecord)},
		{TableReceipts, receiptHeader, mapRows(ds.Receipts, receiptRecord)},
		{TableGLTran, glEntryHeader, mapRows(ds.GLEntries, glEntryRecord)},
	}
	for _, w := range writes {
		if err := writeTable(p.dir, w.table, w.header, w.rows, mode); err != nil {
			return err
		}
	}
	return nil
}

// appendDaily extends only the transactional tables; base entities are
// inputs to the daily run, not outputs.
func (p *Pipeline) appendDaily(ds *Dataset) error {
	writes := []struct {
		table  string
		header []string
		rows   [][]string
	}{
		{TableCustInvoices, custInvoiceHeader, mapRows(ds.CustomerInvoices, custInvoiceRecord)},
		{TableVendInvoices, vendInvoiceHeader, mapRows(ds.VendorInvoices, vendInvoiceRecord)},
		{TableCheckReg, checkRegHeader, mapRows(ds.Checks, checkRegRecord)},
		{TableReceipts, receiptHeader, mapRows(ds.Receipts, receiptRecord)},
		{TableGLTran, glEntryHeader, mapRows(ds.GLEntries, glEntryRecord)},
	}
	for _, w := range writes {
		if err := writeTable(p.dir, w.table, w.header, w.rows, ModeAppend); err != nil {
			return err
		}
	}
	return nil
}

func mapRows[T any](items []T, record func(T) []string) [][]string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = record(item)
	}
	return rows
}

func (p *Pipeline) counts(ds *Dataset) map[string]interface{} {
	return map[string]interface{}{
		"properties":    len(ds.Properties),
		"units":         len(ds.Units),
		"tenants":       len(ds.Tenants),
		"vendors":       len(ds.Vendors),
		"leases":        len(ds.Leases),
		"schedule":      len(ds.Schedule),
		"cust_invoices": len(ds.CustomerInvoices),
		"vend_invoices": len(ds.VendorInvoices),
		"receipts":      len(ds.Receipts),
		"checks":        len(ds.Checks),
		"gl_entries":    len(ds.GLEntries),
	}
}
