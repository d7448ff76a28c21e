package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/avictorio/fieldparts/internal/localpurchase"
	"github.com/avictorio/fieldparts/internal/parts"
	"github.com/avictorio/fieldparts/internal/wallet"
	"github.com/avictorio/fieldparts/pkg/enums"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
)

func messageFor(err error) string {
	if pkgerrors.As(err) != nil {
		return pkgerrors.UserMessage(err)
	}
	return err.Error()
}

func cmdCatalog(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	page := fs.Int("page", 1, "page to display")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := a.catalog.List(ctx)
	if err != nil {
		cached, fetchedAt, cacheErr := loadCatalogSnapshot(ctx, a)
		if cacheErr != nil || fetchedAt.IsZero() {
			return err
		}
		fmt.Printf("backend unreachable, showing snapshot from %s\n", fetchedAt.Format(time.RFC3339))
		items = cached
	} else {
		saveCatalogSnapshot(ctx, a, items)
	}

	visible := a.catalog.Page(items, *page)
	printParts(visible)
	fmt.Printf("page %d of %d (%d parts)\n", *page, a.catalog.TotalPages(items), len(items))
	return nil
}

func cmdSearch(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("q", "", "part number or name to search for")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := a.catalog.Search(ctx, *query)
	if err != nil {
		return err
	}
	printParts(items)
	fmt.Printf("%d parts matched %q\n", len(items), *query)
	return nil
}

func cmdWallet(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("wallet", flag.ExitOnError)
	status := fs.String("status", "all", "filter: all|installed|removed|approved|pending")
	ticket := fs.Int64("ticket", 0, "scope to one maintenance ticket")
	grouped := fs.Bool("grouped", false, "compact into per-part totals")
	summary := fs.Bool("summary", false, "print counts and quantity totals only")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filter, err := enums.ParseStatusFilter(*status)
	if err != nil {
		return err
	}

	records, err := loadWallet(ctx, a)
	if err != nil {
		return err
	}
	records = wallet.FilterByTicket(records, *ticket, *ticket == 0)
	records = wallet.FilterByStatus(records, filter)

	if *summary {
		s := wallet.Summarize(records)
		fmt.Printf("records %d: %d pending, %d approved, %d installed, %d removed\n",
			s.Total, s.Pending, s.Approved, s.Installed, s.Removed)
		fmt.Printf("quantities: %d requested, %d approved, %d installed\n",
			s.RequestedQty, s.ApprovedQty, s.InstalledQty)
		return nil
	}
	if *grouped {
		printGrouped(wallet.GroupAndSum(records))
		return nil
	}
	printRecords(records)
	return nil
}

func loadWallet(ctx context.Context, a *app) ([]parts.PartRequestRecord, error) {
	records, err := a.lifecycle.Wallet(ctx)
	if err != nil {
		cached, fetchedAt, cacheErr := loadWalletSnapshot(ctx, a)
		if cacheErr != nil || fetchedAt.IsZero() {
			return nil, err
		}
		fmt.Printf("backend unreachable, showing snapshot from %s\n", fetchedAt.Format(time.RFC3339))
		return cached, nil
	}
	saveWalletSnapshot(ctx, a, records)
	return records, nil
}

func cmdRequest(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("request", flag.ExitOnError)
	ticket := fs.Int64("ticket", 0, "maintenance ticket id")
	rawLines := fs.String("lines", "", "comma-separated PART_NO:QTY entries")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pairs, err := parsePairs(*rawLines)
	if err != nil {
		return err
	}
	lines := make([]parts.RequestLine, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, parts.RequestLine{PartNo: p.key, MaintenanceID: *ticket, Quantity: p.value})
	}

	created, err := a.lifecycle.Request(ctx, lines)
	if err != nil {
		return err
	}
	fmt.Printf("requested %d parts for ticket %d\n", len(created), *ticket)
	printRecords(created)
	return nil
}

func cmdApprove(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("approve", flag.ExitOnError)
	rawDecisions := fs.String("decisions", "", "comma-separated RECORD_ID:QTY entries")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pairs, err := parsePairs(*rawDecisions)
	if err != nil {
		return err
	}
	decisions := make([]parts.ApproveDecision, 0, len(pairs))
	for _, p := range pairs {
		id, err := strconv.ParseInt(p.key, 10, 64)
		if err != nil {
			return fmt.Errorf("record id %q is not numeric", p.key)
		}
		decisions = append(decisions, parts.ApproveDecision{RecordID: id, ApproveQuantity: p.value})
	}

	// Decisions validate against the current wallet before anything is sent.
	records, err := a.lifecycle.Wallet(ctx)
	if err != nil {
		return err
	}
	if err := a.lifecycle.Approve(ctx, decisions, records); err != nil {
		return err
	}
	fmt.Printf("approved %d records\n", len(decisions))
	return nil
}

func cmdInstall(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("install", flag.ExitOnError)
	ticket := fs.Int64("ticket", 0, "maintenance ticket id")
	rawOrders := fs.String("orders", "", "comma-separated RECORD_ID:QTY entries")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pairs, err := parsePairs(*rawOrders)
	if err != nil {
		return err
	}
	orders := make([]parts.InstallOrder, 0, len(pairs))
	for _, p := range pairs {
		id, err := strconv.ParseInt(p.key, 10, 64)
		if err != nil {
			return fmt.Errorf("record id %q is not numeric", p.key)
		}
		orders = append(orders, parts.InstallOrder{RecordID: id, MaintenanceID: *ticket, Quantity: p.value})
	}

	records, err := a.lifecycle.Wallet(ctx)
	if err != nil {
		return err
	}
	if err := a.lifecycle.Install(ctx, orders, records); err != nil {
		return err
	}
	fmt.Printf("installed %d records on ticket %d\n", len(orders), *ticket)
	return nil
}

func cmdRemove(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	ticket := fs.Int64("ticket", 0, "maintenance ticket id")
	rawOrders := fs.String("orders", "", "comma-separated PART_ID:QTY entries")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pairs, err := parsePairs(*rawOrders)
	if err != nil {
		return err
	}
	orders := make([]parts.RemoveOrder, 0, len(pairs))
	for _, p := range pairs {
		id, err := strconv.ParseInt(p.key, 10, 64)
		if err != nil {
			return fmt.Errorf("part id %q is not numeric", p.key)
		}
		orders = append(orders, parts.RemoveOrder{PartID: id, MaintenanceID: *ticket, Quantity: p.value})
	}

	if err := a.lifecycle.Remove(ctx, orders); err != nil {
		return err
	}
	fmt.Printf("removed %d parts from ticket %d\n", len(orders), *ticket)
	return nil
}

func cmdAssign(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("assign", flag.ExitOnError)
	ticket := fs.Int64("ticket", 0, "maintenance ticket id")
	engineer := fs.Int64("engineer", 0, "service sale person to hand the parts to")
	rawLines := fs.String("lines", "", "comma-separated PART_NO:QTY entries")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pairs, err := parsePairs(*rawLines)
	if err != nil {
		return err
	}
	lines := make([]parts.AssignLine, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, parts.AssignLine{
			PartNo:              p.key,
			Quantity:            p.value,
			ServiceSalePersonID: *engineer,
			MaintenanceID:       *ticket,
		})
	}

	if err := a.lifecycle.Assign(ctx, lines); err != nil {
		return err
	}
	fmt.Printf("assigned %d parts on ticket %d to engineer %d\n", len(lines), *ticket, *engineer)
	return nil
}

func cmdLocalPurchase(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("local-purchase", flag.ExitOnError)
	ticket := fs.Int64("ticket", 0, "maintenance ticket id")
	rawLines := fs.String("lines", "", "comma-separated PART_NO:NAME:QTY:PRICE entries")
	arrived := fs.Bool("arrived", false, "parts already on site")
	refurbish := fs.Bool("refurbish", false, "refurbished parts")
	entryDate := fs.String("date", "", "entry date YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := parsePurchaseLines(*rawLines)
	if err != nil {
		return err
	}
	opts := localpurchase.SubmitOptions{
		MaintenanceID: *ticket,
		IsArrived:     *arrived,
		IsRefurbish:   *refurbish,
	}
	if *entryDate != "" {
		parsed, err := time.Parse("2006-01-02", *entryDate)
		if err != nil {
			return fmt.Errorf("entry date %q is not YYYY-MM-DD", *entryDate)
		}
		opts.EntryDate = parsed
	}

	if err := a.purchases.SubmitAll(ctx, items, opts); err != nil {
		return err
	}
	fmt.Printf("submitted %d purchase lines for ticket %d\n", len(items), *ticket)
	return nil
}

func cmdTicket(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("ticket", flag.ExitOnError)
	id := fs.Int64("id", 0, "maintenance ticket id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	detail, err := a.tickets.Detail(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("ticket %d  %s  [%s]\n", detail.ID, detail.AssetName, detail.Status)
	if detail.Description != "" {
		fmt.Println(detail.Description)
	}
	if len(detail.Parts) > 0 {
		fmt.Println("\nparts:")
		printRecords(detail.Parts)
	}
	for _, comment := range detail.Comments {
		verdict := ""
		if comment.IsAccepted != nil {
			if *comment.IsAccepted {
				verdict = " [accepted]"
			} else {
				verdict = " [rejected]"
			}
		}
		fmt.Printf("comment #%d %s%s: %s\n", comment.ID, comment.Author, verdict, comment.Body)
	}
	for _, photo := range detail.Photos {
		fmt.Printf("photo #%d (%s) %s\n", photo.ID, photo.Type, photo.URL)
	}
	return nil
}

func cmdPhoto(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("photo", flag.ExitOnError)
	ticket := fs.Int64("ticket", 0, "maintenance ticket id")
	rawType := fs.String("type", "", "photo type: breakdown|installation|completion")
	path := fs.String("file", "", "image file to upload")
	if err := fs.Parse(args); err != nil {
		return err
	}

	photoType, err := enums.ParsePhotoType(*rawType)
	if err != nil {
		return err
	}
	file, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := a.tickets.AttachPhoto(ctx, *ticket, photoType, file.Name(), file); err != nil {
		return err
	}
	fmt.Printf("photo attached to ticket %d\n", *ticket)
	return nil
}

// pair is one KEY:INT entry of a comma-separated flag value.
type pair struct {
	key   string
	value int
}

func parsePairs(raw string) ([]pair, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("no entries given")
	}
	var pairs []pair
	for _, entry := range strings.Split(trimmed, ",") {
		kv := strings.SplitN(strings.TrimSpace(entry), ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("entry %q is not KEY:QTY", entry)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil {
			return nil, fmt.Errorf("quantity %q is not numeric", kv[1])
		}
		pairs = append(pairs, pair{key: strings.TrimSpace(kv[0]), value: qty})
	}
	return pairs, nil
}

func parsePurchaseLines(raw string) ([]*localpurchase.Item, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("no purchase lines given")
	}
	var items []*localpurchase.Item
	for _, entry := range strings.Split(trimmed, ",") {
		fields := strings.Split(strings.TrimSpace(entry), ":")
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %q is not PART_NO:NAME:QTY:PRICE", entry)
		}
		item := localpurchase.NewItem(fields[0], fields[1])
		if err := item.SetQuantity(fields[2]); err != nil {
			return nil, err
		}
		if err := item.SetPricePerUnit(fields[3]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func printParts(items []parts.InventoryPart) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPART NO\tNAME\tAVAILABLE")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", item.ID, item.PartNo, item.PartName, item.AvailableQuantity)
	}
	w.Flush()
}

func printRecords(records []parts.PartRequestRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPART NO\tTICKET\tREQ\tAPPR\tINST\tSTATUS")
	for _, rec := range records {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\t%s\n",
			rec.ID, rec.PartNo, rec.MaintenanceID, rec.RequestedQuantity,
			intOrDash(rec.ApproveQuantity), intOrDash(rec.InstallQuantity), rec.Status())
	}
	w.Flush()
}

func printGrouped(lines []wallet.GroupedLine) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PART NO\tLOT\tQTY")
	for _, line := range lines {
		lot := "removed"
		if line.Installed {
			lot = "installed"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", line.PartNo, lot, line.Quantity)
	}
	w.Flush()
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func saveWalletSnapshot(ctx context.Context, a *app, records []parts.PartRequestRecord) {
	if a.snapshots == nil {
		return
	}
	if err := a.snapshots.SaveWallet(ctx, records); err != nil {
		a.logg.Warn(ctx, "wallet snapshot not saved: "+err.Error())
	}
}

func loadWalletSnapshot(ctx context.Context, a *app) ([]parts.PartRequestRecord, time.Time, error) {
	if a.snapshots == nil {
		return nil, time.Time{}, nil
	}
	return a.snapshots.LoadWallet(ctx)
}

func saveCatalogSnapshot(ctx context.Context, a *app, items []parts.InventoryPart) {
	if a.snapshots == nil {
		return
	}
	if err := a.snapshots.SaveCatalog(ctx, items); err != nil {
		a.logg.Warn(ctx, "catalog snapshot not saved: "+err.Error())
	}
}

func loadCatalogSnapshot(ctx context.Context, a *app) ([]parts.InventoryPart, time.Time, error) {
	if a.snapshots == nil {
		return nil, time.Time{}, nil
	}
	return a.snapshots.LoadCatalog(ctx)
}
