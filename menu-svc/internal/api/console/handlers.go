package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"restaurant-manager/menu-svc/internal/domain"
	"restaurant-manager/menu-svc/internal/service"
)

const (
	flagAll       = "--all"
	flagWholesale = "--wholesale"
	flagObject    = "--object"
)

type Handler struct {
	Restaurant service.RestaurantServiceInterface
	router     *Router
}

func NewHandler(restaurant service.RestaurantServiceInterface) *Handler {
	return &Handler{Restaurant: restaurant}
}

func (h *Handler) RegisterRoutes(r *Router) {
	h.router = r

	r.HandleFunc("status", "status", h.status)
	r.HandleFunc("names", "names", h.names)
	r.HandleFunc("sort", "sort <field 1=name 2=profit 3=rating> <algorithm 1=selection 2=insertion>", h.sort)
	r.HandleFunc("help", "help", h.help)
	r.HandleFunc("add", "add <name> <MAIN|DESSERT|SIDE|DRINK> <servingSize> <calories> <retail> <wholesale>", h.addItem)
	r.HandleFunc("remove", "remove <name>", h.removeItem)
	r.HandleFunc("activate", "activate <name>|--all", h.activateItem)
	r.HandleFunc("discontinue", "discontinue <name>|--all", h.discontinueItem)
	r.HandleFunc("order", "order <name> <quantity>", h.orderItem)
	r.HandleFunc("rate", "rate <item> <reviewer> <mm/dd/yyyy> <score 1-5>", h.rateItem)
	r.HandleFunc("price", "price [--wholesale] <name>|--all <percent>", h.updatePrice)
	r.HandleFunc("profit", "profit", h.profit)
	r.HandleFunc("avgrating", "avgrating", h.averageRating)
	r.HandleFunc("write", "write <file> [--object]", h.writeFile)
	r.HandleFunc("card", "card <item> <file.png>", h.menuCard)
}

func (h *Handler) status(ctx context.Context, args []string) string {
	return h.Restaurant.Status() + "\n\n"
}

func (h *Handler) names(ctx context.Context, args []string) string {
	var b strings.Builder
	b.WriteString("The restaurant item names are as follows: \n")
	for _, name := range h.Restaurant.ItemNames() {
		b.WriteString(name + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (h *Handler) help(ctx context.Context, args []string) string {
	if h.router == nil {
		return "\n"
	}
	return h.router.Usage() + "quit\n\n"
}

func (h *Handler) sort(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return "Need non-null input!\n"
	}
	field, err1 := strconv.Atoi(args[0])
	alg, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return "Sort field and algorithm must be whole numbers.\n"
	}
	result, err := h.Restaurant.Sort(field, alg)
	if err != nil {
		return err.Error() + "\n"
	}
	return "Sort results:\n" + result + "\n"
}

func (h *Handler) addItem(ctx context.Context, args []string) string {
	if len(args) < 6 {
		return "Need fields for name, serving size, Calories, price, and wholesale price!\n\n"
	}
	name := args[0]
	category, errCat := domain.ParseCategory(args[1])
	serving, errServing := strconv.Atoi(args[2])
	calories, errCalories := strconv.Atoi(args[3])
	retail, errRetail := decimal.NewFromString(args[4])
	wholesale, errWholesale := decimal.NewFromString(args[5])
	for _, err := range []error{errCat, errServing, errCalories, errRetail, errWholesale} {
		if err != nil {
			return "Item " + name + " not added to menu due to invalid input (Needs category, retail price, wholesale price, name, and serving size).\n\n"
		}
	}

	if err := h.Restaurant.Add(ctx, name, category, serving, calories, retail, wholesale); err != nil {
		return err.Error() + "\nItem " + name + " not added to menu.\n\n"
	}
	return "Item " + name + " added successfully.\n\n"
}

func (h *Handler) removeItem(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "Need field for name! \n\n"
	}
	name := args[0]
	if h.Restaurant.Remove(ctx, name) {
		return name + " successfully removed from menu.\n\n"
	}
	return name + " unsuccessfully removed from menu.\n\n"
}

func (h *Handler) activateItem(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "Non-empty item name required.\n\n"
	}
	if args[0] == flagAll {
		h.Restaurant.ActivateAll(ctx)
		return "Activated all items on menu.\n\n"
	}
	name := args[0]
	if h.Restaurant.Activate(ctx, name) {
		return name + " successfully activated on menu.\n\n"
	}
	return name + " unsuccessfully activated on menu.\n\n"
}

func (h *Handler) discontinueItem(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "Non-empty item name required.\n\n"
	}
	if args[0] == flagAll {
		h.Restaurant.DiscontinueAll(ctx)
		return "Discontinued all items on menu.\n\n"
	}
	name := args[0]
	if h.Restaurant.Discontinue(ctx, name) {
		return name + " successfully discontinued on menu.\n\n"
	}
	return name + " unsuccessfully discontinued on menu.\n\n"
}

func (h *Handler) orderItem(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "Non-empty item name required.\n\n"
	}
	if len(args) < 2 {
		return "Non-empty number of orders required.\n\n"
	}
	name := args[0]
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return "Number of orders must be a whole number.\n\n"
	}

	label := name
	if quantity > 1 {
		label += "s"
	}
	ok, err := h.Restaurant.Order(ctx, name, quantity)
	if err != nil {
		return fmt.Sprintf("%v\n%d %s unsuccessfully ordered.\n\n", err, quantity, label)
	}
	if !ok {
		return fmt.Sprintf("%d %s unsuccessfully ordered.\n\n", quantity, label)
	}
	return fmt.Sprintf("%d %s successfully ordered.\n\n", quantity, label)
}

func (h *Handler) rateItem(ctx context.Context, args []string) string {
	switch len(args) {
	case 0:
		return "Non-empty item name required.\n\n"
	case 1:
		return "Non-empty reviewer name required.\n\n"
	case 2:
		return "Non-empty date required (mm/dd/yyyy).\n\n"
	case 3:
		return "Non-empty rating required (1 - 5).\n\n"
	}
	item, reviewer, date := args[0], args[1], args[2]
	score, err := strconv.Atoi(args[3])
	if err != nil {
		return "Rating must be a whole number (1 - 5).\n\n"
	}

	if err := h.Restaurant.AddRating(ctx, item, reviewer, date, score); err != nil {
		return err.Error() + "\nRating unsuccessfully added for " + item + "\n\n"
	}
	return "Rating successfully added for " + item + "\n\n"
}

func (h *Handler) updatePrice(ctx context.Context, args []string) string {
	wholesale := false
	var rest []string
	for _, arg := range args {
		if arg == flagWholesale {
			wholesale = true
			continue
		}
		rest = append(rest, arg)
	}
	if len(rest) == 0 {
		return "Non-empty item name required.\n\n"
	}
	if len(rest) < 2 {
		return "Non-empty percent required.\n\n"
	}
	target := rest[0]
	percent, err := strconv.Atoi(rest[1])
	if err != nil {
		return "Percent must be a whole number.\n\n"
	}

	if target == flagAll {
		ok, err := h.Restaurant.UpdateAllPrices(ctx, wholesale, percent)
		if err != nil {
			return err.Error() + "\nUnsuccessfully changed prices for all items on menu.\n\n"
		}
		if !ok {
			return "Unsuccessfully changed prices for all items on menu.\n\n"
		}
		return "Successfully changed prices for all items on menu.\n\n"
	}

	ok, err := h.Restaurant.UpdatePrice(ctx, wholesale, target, percent)
	if err != nil {
		return err.Error() + "\nPrice for " + target + " unsuccessfully changed.\n\n"
	}
	if !ok {
		return "Price for " + target + " unsuccessfully changed.\n\n"
	}
	return "Price for " + target + " successfully changed.\n\n"
}

func (h *Handler) profit(ctx context.Context, args []string) string {
	return fmt.Sprintf("The total profit of restaurant %s is %s.\n\n",
		h.Restaurant.Name(), service.FormatCurrency(h.Restaurant.TotalProfit()))
}

func (h *Handler) averageRating(ctx context.Context, args []string) string {
	return fmt.Sprintf("Processing average item rating...\nThe average rating for menu items at restaurant %s is %s.\n\n",
		h.Restaurant.Name(), service.FormatRating(h.Restaurant.AverageItemRating()))
}

func (h *Handler) writeFile(ctx context.Context, args []string) string {
	isObject := false
	var rest []string
	for _, arg := range args {
		if arg == flagObject {
			isObject = true
			continue
		}
		rest = append(rest, arg)
	}
	if len(rest) == 0 {
		return "Non-empty filename required.\n\n"
	}
	fileName := rest[0]
	format := domain.FormatFromObjectFlag(isObject)

	if err := h.Restaurant.Write(ctx, fileName, format); err != nil {
		return fmt.Sprintf("%v\n%s file %s could not be written.\n\n", err, format, fileName)
	}
	return fmt.Sprintf("%s file %s written successfully.\n\n", format, fileName)
}

func (h *Handler) menuCard(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return "Need item name and output file for the menu card.\n\n"
	}
	item, fileName := args[0], args[1]
	if err := h.Restaurant.WriteMenuCard(item, fileName); err != nil {
		return err.Error() + "\nMenu card for " + item + " could not be written.\n\n"
	}
	return "Menu card for " + item + " written to " + fileName + ".\n\n"
}
