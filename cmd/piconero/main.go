// Command piconero is a thin command line wrapper around the wallet RPC
// client, mostly useful for poking at a running monero-wallet-rpc.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sebamiro/piconero"
)

var (
	host    string
	port    uint16
	verbose bool

	client piconero.Client
)

func main() {
	root := &cobra.Command{
		Use:   "piconero",
		Short: "Talk to a monero-wallet-rpc server",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = piconero.New(host, port)
			if verbose {
				client.Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
					Level(zerolog.DebugLevel).
					With().Timestamp().Logger()
			}
		},
	}
	root.PersistentFlags().StringVar(&host, "host", "127.0.0.1", "wallet RPC host")
	root.PersistentFlags().Uint16Var(&port, "port", 18082, "wallet RPC port")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every RPC exchange")

	root.AddCommand(balanceCmd(), addressCmd(), heightCmd(), transferCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func balanceCmd() *cobra.Command {
	var accountIndex uint32
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print the account's balance in XMR",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := client.GetBalance(piconero.GetBalanceRequest{AccountIndex: accountIndex})
			if err != nil {
				return err
			}
			fmt.Printf("balance:  %s XMR\n", r.Balance.XMR())
			fmt.Printf("unlocked: %s XMR\n", r.UnlockedBalance.XMR())
			for _, sub := range r.PerSubaddress {
				fmt.Printf("  [%d] %s  %s XMR\n", sub.AddressIndex, sub.Address, sub.Balance.XMR())
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&accountIndex, "account", 0, "account index")
	return cmd
}

func addressCmd() *cobra.Command {
	var accountIndex uint32
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the account's addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := client.GetAddress(accountIndex)
			if err != nil {
				return err
			}
			for _, a := range r.Addresses {
				fmt.Printf("[%d] %s %s\n", a.AddressIndex, a.Address, a.Label)
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&accountIndex, "account", 0, "account index")
	return cmd
}

func heightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "height",
		Short: "Print the wallet's blockchain height",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := client.GetHeight()
			if err != nil {
				return err
			}
			fmt.Println(r.Height)
			return nil
		},
	}
}

func transferCmd() *cobra.Command {
	var accountIndex uint32
	var priority uint32
	cmd := &cobra.Command{
		Use:   "transfer <address> <amount-xmr>",
		Short: "Send XMR to an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xmr, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("bad amount %q: %w", args[1], err)
			}
			amount, err := piconero.AmountFromXMR(xmr)
			if err != nil {
				return err
			}
			r, err := client.Transfer(piconero.TransferRequest{
				Destinations: []piconero.Destination{{Amount: *amount, Address: args[0]}},
				AccountIndex: accountIndex,
				Priority:     priority,
				GetTxKey:     true,
			})
			if err != nil {
				return err
			}
			fmt.Printf("tx:  %s\nfee: %s XMR\n", r.TxHash, r.Fee.XMR())
			return nil
		},
	}
	cmd.Flags().Uint32Var(&accountIndex, "account", 0, "account index")
	cmd.Flags().Uint32Var(&priority, "priority", 0, "transaction priority (0-3)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wallet RPC version",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := client.GetVersion()
			if err != nil {
				return err
			}
			fmt.Printf("%d.%d (release=%s)\n", r.Version>>16, r.Version&0xffff, strconv.FormatBool(r.Release))
			return nil
		},
	}
}
