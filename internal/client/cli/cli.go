package cli

import (
	"fmt"

	"github.com/iudanet/gophstore/internal/client/api"
	"github.com/iudanet/gophstore/internal/client/iocli"
	"github.com/iudanet/gophstore/internal/client/session"
)

type Cli struct {
	apiClient *api.Client
	store     *session.Store
	io        iocli.IO
}

func New(apiClient *api.Client, store *session.Store, io iocli.IO) *Cli {
	return &Cli{
		apiClient: apiClient,
		store:     store,
		io:        io,
	}
}

func PrintUsage() {
	fmt.Println("GophStore Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gophstore [OPTIONS] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version   Show version information")
	fmt.Println("  --server    Commerce API base URL (default: " + api.DefaultBaseURL + ")")
	fmt.Println("  --db        Path to local database (default: gophstore.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                      Register new account")
	fmt.Println("  login                         Login to the store")
	fmt.Println("  logout                        Logout (cart is kept for the next login)")
	fmt.Println("  status                        Show session and cart status")
	fmt.Println()
	fmt.Println("  products [flags]              List products (--title, --category,")
	fmt.Println("                                --price-min, --price-max, --limit, --offset)")
	fmt.Println("  product <id>                  Show product details")
	fmt.Println("  categories                    List categories")
	fmt.Println("  category <id|slug>            Show category details")
	fmt.Println()
	fmt.Println("  cart                          Show the cart")
	fmt.Println("  cart add <productID> [qty]    Add product to the cart")
	fmt.Println("  cart set <productID> <qty>    Set line quantity (0 removes the line)")
	fmt.Println("  cart remove <productID>       Remove product from the cart")
	fmt.Println("  cart clear                    Empty the cart")
	fmt.Println()
	fmt.Println("  profile                       Show profile")
	fmt.Println("  profile update                Update name/email")
	fmt.Println("  profile password              Change password")
	fmt.Println("  profile avatar <path>         Upload avatar image (max 5MB)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  gophstore login")
	fmt.Println("  gophstore products --title hoodie --price-max 50")
	fmt.Println("  gophstore cart add 14 2")
	fmt.Println("  gophstore profile avatar ~/Pictures/me.png")
	fmt.Println("  gophstore --server https://example.com/api/v1 products")
}
