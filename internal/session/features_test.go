package session

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/usecase"
)

type catalogStub struct {
	cat domain.Catalog
	err error
}

func (s *catalogStub) Fetch(context.Context) (domain.Catalog, error) { return s.cat, s.err }

type captureBridge struct{ sent [][]byte }

func (b *captureBridge) Name() string                { return "capture" }
func (b *captureBridge) Available() bool             { return true }
func (b *captureBridge) Ready(context.Context) error { return nil }
func (b *captureBridge) Close() error                { return nil }
func (b *captureBridge) SendData(_ context.Context, data []byte) error {
	b.sent = append(b.sent, data)
	return nil
}

type orderingTestContext struct {
	source    *catalogStub
	bridge    *captureBridge
	app       *Session
	alerts    []string
	highlight string
	outcome   usecase.Outcome
}

func (c *orderingTestContext) reset() {
	c.source = &catalogStub{}
	c.bridge = &captureBridge{}
	c.app = nil
	c.alerts = nil
	c.highlight = ""
	c.outcome = ""
}

func (c *orderingTestContext) ShowAlert(msg string) { c.alerts = append(c.alerts, msg) }

func (c *orderingTestContext) theCatalogHasCategoryAndSubcategory(category, sub string) error {
	c.source.cat.Categories = []domain.Category{{
		Name:          category,
		Subcategories: []domain.Subcategory{{Name: sub}},
	}}
	return nil
}

func (c *orderingTestContext) theProductWeighsCostsAndHasType(name string, weight, price int, typ string) error {
	sub := &c.source.cat.Categories[0].Subcategories[0]
	sub.Products = append(sub.Products, domain.Product{
		Name:          name,
		Weight:        float64(weight),
		PriceFinal:    domain.Money(int64(price) * 100),
		PriceOriginal: domain.Money(int64(price) * 100),
		Type:          domain.ProductType(typ),
	})
	return nil
}

func (c *orderingTestContext) theCatalogServerAnswersWithHTTP(status int) error {
	c.source.err = domain.Unavailable(fmt.Sprintf("Failed to load menu data: HTTP %d", status), nil)
	return nil
}

func (c *orderingTestContext) theMenuIsLoaded() error {
	c.app = New(Options{Source: c.source, Bridge: c.bridge})
	_ = c.app.Load(context.Background())
	return nil
}

func (c *orderingTestContext) entryID(name string) (string, error) {
	for _, cat := range c.app.Menu().Categories {
		for _, sub := range cat.Subcategories {
			for _, p := range sub.Products {
				if strings.HasPrefix(p.Title, name+" - ") {
					return p.ID, nil
				}
			}
		}
	}
	return "", fmt.Errorf("product %q is not on the menu", name)
}

func (c *orderingTestContext) iAddOf(delta int, name string) error {
	id, err := c.entryID(name)
	if err != nil {
		return err
	}
	res, _, err := c.app.ChangeQuantity(id, delta, c)
	if res.Highlight != nil {
		c.highlight = res.Highlight.Control
	}
	if err != nil && domain.KindOf(err) != domain.KindValidation {
		return err
	}
	return nil
}

func (c *orderingTestContext) iChooseGrindFor(level, name string) error {
	id, err := c.entryID(name)
	if err != nil {
		return err
	}
	_, err = c.app.SelectGrind(id, level)
	return err
}

func (c *orderingTestContext) iClearTheCartAnswering(answer string) error {
	c.app.Clear(domain.ConfirmFunc(func(string) bool { return answer == "yes" }))
	return nil
}

func (c *orderingTestContext) iSubmitTheOrderAsGuestWithComment(comment string) error {
	outcome, _, err := c.app.Submit(context.Background(), domain.Requester{}, comment, c)
	c.outcome = outcome
	if outcome == usecase.OutcomeFailed {
		return err
	}
	return nil
}

func (c *orderingTestContext) theAlertIsShown(msg string) error {
	for _, a := range c.alerts {
		if a == msg {
			return nil
		}
	}
	return fmt.Errorf("alert %q not shown, got %v", msg, c.alerts)
}

func (c *orderingTestContext) theGrindSelectorOfIsHighlighted(name string) error {
	id, err := c.entryID(name)
	if err != nil {
		return err
	}
	if want := "grind_" + id; c.highlight != want {
		return fmt.Errorf("expected highlight %q, got %q", want, c.highlight)
	}
	return nil
}

func (c *orderingTestContext) theCartIsEmpty() error {
	if sum := c.app.Cart(); sum.HasItems || len(sum.Lines) != 0 {
		return fmt.Errorf("expected empty cart, got %d lines", len(sum.Lines))
	}
	return nil
}

func (c *orderingTestContext) theCartTotalIs(total string) error {
	if got := c.app.Cart().Total.String(); got != total {
		return fmt.Errorf("expected total %s, got %s", total, got)
	}
	return nil
}

func (c *orderingTestContext) theCartLineReads(text string) error {
	for _, l := range c.app.Cart().Lines {
		if l.Text == text {
			return nil
		}
	}
	return fmt.Errorf("no cart line %q", text)
}

func (c *orderingTestContext) theSubmitButtonReads(label string) error {
	if got := c.app.Cart().UI().SubmitLabel; got != label {
		return fmt.Errorf("expected submit label %q, got %q", label, got)
	}
	return nil
}

func (c *orderingTestContext) theQuantityOfIs(name string, qty int) error {
	id, err := c.entryID(name)
	if err != nil {
		return err
	}
	e, ok := c.app.Entry(id)
	if !ok {
		return fmt.Errorf("no entry %s", id)
	}
	if e.Qty != qty {
		return fmt.Errorf("expected quantity %d, got %d", qty, e.Qty)
	}
	return nil
}

func (c *orderingTestContext) theOrderOutcomeIs(outcome string) error {
	if string(c.outcome) != outcome {
		return fmt.Errorf("expected outcome %q, got %q (alerts %v)", outcome, c.outcome, c.alerts)
	}
	return nil
}

func (c *orderingTestContext) theHostReceives(doc *godog.DocString) error {
	if len(c.bridge.sent) != 1 {
		return fmt.Errorf("expected one message, got %d", len(c.bridge.sent))
	}
	var want, got any
	if err := json.Unmarshal([]byte(doc.Content), &want); err != nil {
		return err
	}
	if err := json.Unmarshal(c.bridge.sent[0], &got); err != nil {
		return err
	}
	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("payload mismatch:\nwant %v\ngot  %v", want, got)
	}
	return nil
}

func (c *orderingTestContext) theHostReceivesNothing() error {
	if len(c.bridge.sent) != 0 {
		return fmt.Errorf("expected nothing sent, got %d messages", len(c.bridge.sent))
	}
	return nil
}

func (c *orderingTestContext) theMenuShowsAnErrorMentioning(text string) error {
	view := c.app.Menu()
	if view.Error == nil {
		return fmt.Errorf("menu has no error panel")
	}
	if !strings.Contains(view.Error.Reason, text) {
		return fmt.Errorf("error reason %q does not mention %q", view.Error.Reason, text)
	}
	if len(view.Categories) != 0 {
		return fmt.Errorf("menu should be empty on load failure")
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &orderingTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the catalog has category "([^"]*)" and subcategory "([^"]*)"$`, tc.theCatalogHasCategoryAndSubcategory)
	ctx.Step(`^the product "([^"]*)" weighs (\d+) g, costs (\d+) and has type "([^"]*)"$`, tc.theProductWeighsCostsAndHasType)
	ctx.Step(`^the catalog server answers with HTTP (\d+)$`, tc.theCatalogServerAnswersWithHTTP)
	ctx.Step(`^the menu is loaded$`, tc.theMenuIsLoaded)

	// When steps
	ctx.Step(`^I add (-?\d+) of "([^"]*)"$`, tc.iAddOf)
	ctx.Step(`^I choose grind "([^"]*)" for "([^"]*)"$`, tc.iChooseGrindFor)
	ctx.Step(`^I clear the cart answering "(yes|no)"$`, tc.iClearTheCartAnswering)
	ctx.Step(`^I submit the order as guest with comment "([^"]*)"$`, tc.iSubmitTheOrderAsGuestWithComment)

	// Then steps
	ctx.Step(`^the alert "([^"]*)" is shown$`, tc.theAlertIsShown)
	ctx.Step(`^the grind selector of "([^"]*)" is highlighted$`, tc.theGrindSelectorOfIsHighlighted)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the cart total is (\d+)$`, tc.theCartTotalIs)
	ctx.Step(`^the cart line reads "([^"]*)"$`, tc.theCartLineReads)
	ctx.Step(`^the submit button reads "([^"]*)"$`, tc.theSubmitButtonReads)
	ctx.Step(`^the quantity of "([^"]*)" is (\d+)$`, tc.theQuantityOfIs)
	ctx.Step(`^the order outcome is "([^"]*)"$`, tc.theOrderOutcomeIs)
	ctx.Step(`^the host receives:$`, tc.theHostReceives)
	ctx.Step(`^the host receives nothing$`, tc.theHostReceivesNothing)
	ctx.Step(`^the menu shows an error mentioning "([^"]*)"$`, tc.theMenuShowsAnErrorMentioning)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/ordering.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
