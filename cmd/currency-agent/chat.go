package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SasiVeeramachaneni/currency-converter/model"
)

var chatMessage string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the agent on the terminal",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "send a single message and exit")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ag, err := buildAgent(cfg)
	if err != nil {
		return fmt.Errorf("failed to build agent: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if chatMessage != "" {
		reply, err := ag.Run(ctx, chatMessage)
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nGoodbye! Have a great day!")
		cancel()
		os.Exit(0)
	}()

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Currency Converter Agent")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("\nHello! I'm your currency conversion assistant.")
	fmt.Println("I can help you convert currencies, check exchange rates,")
	fmt.Println("and list supported currencies.")
	fmt.Println("\nType 'quit' or 'exit' to end the conversation.")
	fmt.Println(strings.Repeat("-", 50))

	var history []model.Message
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Println("\nGoodbye! Have a great day!")
			return nil
		}

		reply, err := ag.RunWithHistory(ctx, history, input)
		if err != nil {
			fmt.Printf("\nError: %v\n", err)
			continue
		}
		fmt.Printf("\nAssistant: %s\n", reply)

		history = append(history,
			model.NewUserMessage(input),
			model.NewAssistantMessage(reply),
		)
	}
	return scanner.Err()
}
