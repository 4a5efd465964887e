package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"chainscope/internal/aggregator"
	"chainscope/internal/chain"
	"chainscope/internal/config"
	"chainscope/internal/inspector"
)

func main() {
	root := &cobra.Command{
		Use:          "chainscope",
		Short:        "MCP tool servers for EVM chain state and DeFi market data",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	inspectorCmd := &cobra.Command{
		Use:   "inspector",
		Short: "Run the chain inspector MCP server on stdio",
		RunE:  runInspector,
	}
	addEndpointFlags(inspectorCmd)
	inspectorCmd.Flags().Duration("rpc-timeout", 30*time.Second, "per-call RPC timeout")
	inspectorCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(inspectorCmd)

	aggregatorCmd := &cobra.Command{
		Use:   "aggregator",
		Short: "Run the market aggregator MCP server on stdio",
		RunE:  runAggregator,
	}
	addEndpointFlags(aggregatorCmd)
	aggregatorCmd.Flags().String("llama-url", "https://api.llama.fi", "DeFiLlama base URL")
	aggregatorCmd.Flags().String("coingecko-url", "https://api.coingecko.com/api/v3", "CoinGecko base URL")
	aggregatorCmd.Flags().Duration("http-timeout", 30*time.Second, "outbound HTTP timeout")
	aggregatorCmd.Flags().Duration("tvl-cache-ttl", time.Hour, "TVL cache staleness window")
	aggregatorCmd.Flags().Duration("price-cache-ttl", 5*time.Minute, "price cache staleness window")
	aggregatorCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(aggregatorCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addEndpointFlags(cmd *cobra.Command) {
	for _, name := range chain.Names() {
		cmd.Flags().String("rpc-"+name, chain.DefaultEndpoints[name], fmt.Sprintf("%s RPC URL", name))
	}
}

func runInspector(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadInspector(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := chain.NewRegistry(cfg.Endpoints)
	if err != nil {
		return err
	}

	chains := make(map[string]inspector.ChainReader, len(cfg.Endpoints))
	clients := make([]*chain.Client, 0, len(cfg.Endpoints))
	err = registry.Each(func(name, url string) error {
		client, err := chain.NewClient(ctx, url)
		if err != nil {
			return fmt.Errorf("connect %s: %w", name, err)
		}
		chains[name] = client
		clients = append(clients, client)
		return nil
	})
	if err != nil {
		for _, client := range clients {
			client.Close()
		}
		return err
	}
	defer func() {
		for _, client := range clients {
			client.Close()
		}
	}()

	ins := inspector.New(chains, logger)
	ins.SetTimeout(cfg.RPCTimeout)

	logger.Info("chain inspector start", zap.Int("chains", len(chains)), zap.Duration("rpc_timeout", cfg.RPCTimeout))

	return mcpserver.ServeStdio(inspector.NewServer(ins))
}

func runAggregator(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadAggregator(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	agg := aggregator.New(aggregator.Config{
		LlamaURL:     cfg.LlamaURL,
		CoingeckoURL: cfg.CoingeckoURL,
		Endpoints:    cfg.Endpoints,
		Timeout:      cfg.HTTPTimeout,
		TVLTTL:       cfg.TVLCacheTTL,
		PriceTTL:     cfg.PriceTTL,
	}, logger)
	defer agg.Close()

	logger.Info("market aggregator start",
		zap.String("llama_url", cfg.LlamaURL),
		zap.String("coingecko_url", cfg.CoingeckoURL),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
	)

	return mcpserver.ServeStdio(aggregator.NewServer(agg))
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	// stdout carries the MCP transport; logs must stay on stderr.
	cfg.OutputPaths = []string{"stderr"}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
