package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/verichains/collectible-validator/cmd/validator/collectible"
	"github.com/verichains/collectible-validator/cmd/validator/scenario"
	"gopkg.in/urfave/cli.v1"
)

var slotRoles = map[int]string{
	scenario.SlotCreator:     "creator",
	scenario.SlotRecipient:   "recipient",
	scenario.SlotParticipant: "participant",
}

func stateRows(state *collectible.State) [][]string {
	return [][]string{
		{"Total supply", state.TotalSupply.String()},
		{"Maximum supply", state.MaximumSupply.String()},
		{"Max tokens per transaction", state.MaxTransactionCount.String()},
		{"Unit price", state.UnitPrice.String()},
		{"Paused", strconv.FormatBool(state.Paused)},
		{"Base URI", state.BaseURI},
		{"Creator", state.Creator.Hex()},
		{"Developer", state.Developer.Hex()},
		{"Dev sale commission", state.DevSaleCommission.String()},
		{"Private minting", strconv.FormatBool(state.IsPrivateMinting)},
		{"Creator mints for free", strconv.FormatBool(state.CanCreatorMintForFree)},
		{"Balance", state.Balance.String()},
	}
}

func eventRows(event *collectible.Event) [][]string {
	rows := [][]string{
		{"Event", event.Name},
		{"Transaction", event.TxHash.Hex()},
		{"Block", strconv.FormatUint(event.BlockNumber, 10)},
	}
	names := make([]string, 0, len(event.Fields))
	for name := range event.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, []string{name, fmt.Sprintf("%v", event.Fields[name])})
	}
	return rows
}

func renderTable(header []string, rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func showStatus(ctx *cli.Context) error {
	c := context.Background()
	s, err := openSession(c, ctx, 1)
	if err != nil {
		return err
	}
	defer s.Close()

	client, err := s.contractClient(c)
	if err != nil {
		return err
	}
	state, err := collectible.ReadState(c, client)
	if err != nil {
		return err
	}
	fmt.Println("Contract", client.Address().Hex())
	renderTable([]string{"Property", "Value"}, stateRows(state))

	rows := make([][]string, 0, len(s.accounts))
	for _, acc := range s.accounts {
		whitelisted, err := client.IsAddressWhitelisted(c, acc.Address)
		if err != nil {
			return err
		}
		tokens, err := client.TokensOwnedBy(c, acc.Address)
		if err != nil {
			return err
		}
		ids := make([]string, len(tokens))
		for i, id := range tokens {
			ids[i] = id.String()
		}
		rows = append(rows, []string{acc.Address.Hex(), strconv.FormatBool(whitelisted), strings.Join(ids, ",")})
	}
	renderTable([]string{"Account", "Whitelisted", "Tokens"}, rows)

	last, err := client.LastEvent(c)
	if err != nil {
		return err
	}
	if last == nil {
		fmt.Println("No event emitted")
		return nil
	}
	renderTable([]string{"Last event", ""}, eventRows(last))
	return nil
}

func showAccounts(ctx *cli.Context) error {
	c := context.Background()
	s, err := openSession(c, ctx, scenario.SlotParticipant+1)
	if err != nil {
		return err
	}
	defer s.Close()

	rows := make([][]string, 0, len(s.accounts))
	for slot, acc := range s.accounts {
		balance, err := s.eth.BalanceAt(c, acc.Address, nil)
		if err != nil {
			return err
		}
		role, ok := slotRoles[slot]
		if !ok {
			role = "-"
		}
		rows = append(rows, []string{strconv.Itoa(slot), role, acc.Address.Hex(), balance.String()})
	}
	renderTable([]string{"Slot", "Role", "Address", "Balance"}, rows)
	return nil
}
