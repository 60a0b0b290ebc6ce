package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/coinkeeper/internal/client"
)

const usage = `Usage: coinkeeper-cli [-a address] <command>

Commands:
  sign-up              register a new account
  login                log in and cache a session token
  validate             show the account behind the cached token
  list                 list transactions
  send <amount> <to>   record a transfer
`

func main() {
	addr := flag.String("a", "http://localhost:3005", "server address")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	c := client.New(*addr)
	ctx := context.Background()

	if err := run(ctx, c, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	switch args[0] {
	case "sign-up":
		email, err := client.GetSimpleText(reader, "Email", os.Stdout)
		if err != nil {
			return err
		}
		name, err := client.GetSimpleText(reader, "Name", os.Stdout)
		if err != nil {
			return err
		}
		password, err := client.GetPassword(os.Stdout)
		if err != nil {
			return err
		}
		user, err := c.SignUp(ctx, email, password, name)
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s (id=%d). Now log in.\n", user.Email, user.ID)
		return nil

	case "login":
		email, err := client.GetSimpleText(reader, "Email", os.Stdout)
		if err != nil {
			return err
		}
		password, err := client.GetPassword(os.Stdout)
		if err != nil {
			return err
		}
		user, token, err := c.Login(ctx, email, password)
		if err != nil {
			return err
		}
		if err := client.SaveToken(token); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (id=%d).\n", user.Email, user.ID)
		return nil

	case "validate":
		token, err := client.LoadToken()
		if err != nil {
			return err
		}
		user, err := c.Validate(ctx, token)
		if err != nil {
			return err
		}
		fmt.Printf("Signed in as %s (id=%d), %d transaction(s).\n", user.Email, user.ID, len(user.Transactions))
		return nil

	case "list":
		token, err := client.LoadToken()
		if err != nil {
			return err
		}
		list, err := c.Transactions(ctx, token)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No transactions.")
			return nil
		}
		for _, tr := range list {
			fmt.Printf("#%d  %.2f -> %s\n", tr.ID, tr.Amount, tr.Recipient)
		}
		return nil

	case "send":
		if len(args) != 3 {
			return fmt.Errorf("usage: send <amount> <recipient>")
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[1])
		}
		token, err := client.LoadToken()
		if err != nil {
			return err
		}
		tr, err := c.Send(ctx, token, amount, args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Sent %.2f to %s (id=%d).\n", tr.Amount, tr.Recipient, tr.ID)
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
