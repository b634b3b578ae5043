package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"xdao.co/nftwire/cidutil"
	"xdao.co/nftwire/cw721"
	"xdao.co/nftwire/keys"
	"xdao.co/nftwire/querier"
	"xdao.co/nftwire/querier/queryconfig"
	"xdao.co/nftwire/querier/queryregistry"
	"xdao.co/nftwire/tx"
	"xdao.co/nftwire/wasm"

	_ "xdao.co/nftwire/querier/grpcquerier"
	_ "xdao.co/nftwire/querier/memstate"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "call":
		return cmdCall(args[1:], out, errOut)
	case "owner-of":
		return cmdOwnerOf(args[1:], out, errOut)
	case "all-tokens":
		return cmdAllTokens(args[1:], out, errOut)
	case "num-tokens":
		return cmdNumTokens(args[1:], out, errOut)
	case "nft-info":
		return cmdNftInfo(args[1:], out, errOut)
	case "tokens":
		return cmdTokens(args[1:], out, errOut)
	case "key":
		return cmdKey(args[1:], out, errOut)
	case "sign":
		return cmdSign(args[1:], out, errOut)
	case "verify":
		return cmdVerify(args[1:], out, errOut)
	case "metadata-cid":
		return cmdMetadataCID(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-nft: NFT contract call/query CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-nft call transfer --contract <addr> --recipient <addr> --token-id <id>")
	fmt.Fprintln(w, "  xdao-nft call send --contract <addr> --to-contract <addr> --token-id <id> [--msg-file <path>]")
	fmt.Fprintln(w, "  xdao-nft call mint --contract <addr> --token-id <id> --owner <addr> [--token-uri ipfs://<cid>]")
	fmt.Fprintln(w, "  xdao-nft call burn --contract <addr> --token-id <id>")
	fmt.Fprintln(w, "  xdao-nft call approve --contract <addr> --spender <addr> --token-id <id>")
	fmt.Fprintln(w, "  xdao-nft call revoke --contract <addr> --spender <addr> --token-id <id>")
	fmt.Fprintln(w, "  xdao-nft call approve-all --contract <addr> --operator <addr>")
	fmt.Fprintln(w, "  xdao-nft call revoke-all --contract <addr> --operator <addr>")
	fmt.Fprintln(w, "  xdao-nft owner-of --contract <addr> --token-id <id> [query flags]")
	fmt.Fprintln(w, "  xdao-nft all-tokens --contract <addr> [query flags]")
	fmt.Fprintln(w, "  xdao-nft num-tokens --contract <addr> [query flags]")
	fmt.Fprintln(w, "  xdao-nft nft-info --contract <addr> --token-id <id> [query flags]")
	fmt.Fprintln(w, "  xdao-nft tokens --contract <addr> --owner <addr> [query flags]")
	fmt.Fprintln(w, "  xdao-nft key init --name <name> [--seed-hex <64hex>] [--force]")
	fmt.Fprintln(w, "  xdao-nft key derive --from <name> --purpose <purpose> [--force]")
	fmt.Fprintln(w, "  xdao-nft key list")
	fmt.Fprintln(w, "  xdao-nft key export --name <name> [--purpose <purpose>]")
	fmt.Fprintln(w, "  xdao-nft sign --in <envelope.json> (--seed-hex <64hex> | --signer <name> [--signer-purpose <p>] | --key-file <path>)")
	fmt.Fprintln(w, "  xdao-nft verify --in <signed.json>")
	fmt.Fprintln(w, "  xdao-nft metadata-cid <file> [--uri ipfs://<cid>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Query flags:")
	fmt.Fprintln(w, "  --backend <name>   querier backend (default grpc); see backend flags below")
	fmt.Fprintln(w, "  --query-config <path>  open backends from a JSON config instead")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - call commands print the canonical execute envelope to stdout; nothing is dispatched")
	fmt.Fprintln(w, "  - query commands perform exactly one smart query round trip")
	fmt.Fprintln(w, "  - --seed-hex must be 32 bytes (64 hex chars) ed25519 seed")
	fmt.Fprintln(w, "  - KMS-lite stores keys under ~/.xdao/nftwire/keys (0600 private key files)")
}

// ---- call ----

func cmdCall(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "missing call variant")
		return 2
	}
	variant := args[0]
	fs := flag.NewFlagSet("call "+variant, flag.ContinueOnError)
	fs.SetOutput(errOut)

	var contract, recipient, toContract, tokenID, owner, tokenURI, spender, operator, msgFile string
	fs.StringVar(&contract, "contract", "", "Target contract address")
	fs.StringVar(&recipient, "recipient", "", "Transfer recipient")
	fs.StringVar(&toContract, "to-contract", "", "Receiving contract for send")
	fs.StringVar(&tokenID, "token-id", "", "Token identifier")
	fs.StringVar(&owner, "owner", "", "Owner of a minted token")
	fs.StringVar(&tokenURI, "token-uri", "", "Metadata URI for a minted token (ipfs://<cid>)")
	fs.StringVar(&spender, "spender", "", "Approval spender")
	fs.StringVar(&operator, "operator", "", "Operator account")
	fs.StringVar(&msgFile, "msg-file", "", "Payload file forwarded with send")

	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}
	if contract == "" {
		fmt.Fprintln(errOut, "missing --contract")
		return 2
	}

	var msg cw721.ExecuteMsg
	switch variant {
	case "transfer":
		if recipient == "" || tokenID == "" {
			fmt.Fprintln(errOut, "transfer needs --recipient and --token-id")
			return 2
		}
		msg.TransferNft = &cw721.TransferNft{Recipient: recipient, TokenID: tokenID}
	case "send":
		if toContract == "" || tokenID == "" {
			fmt.Fprintln(errOut, "send needs --to-contract and --token-id")
			return 2
		}
		var payload []byte
		if msgFile != "" {
			b, err := os.ReadFile(msgFile)
			if err != nil {
				fmt.Fprintf(errOut, "read --msg-file: %v\n", err)
				return 1
			}
			payload = b
		}
		msg.SendNft = &cw721.SendNft{Contract: toContract, TokenID: tokenID, Msg: payload}
	case "mint":
		if tokenID == "" || owner == "" {
			fmt.Fprintln(errOut, "mint needs --token-id and --owner")
			return 2
		}
		if tokenURI != "" {
			if _, err := cw721.ParseTokenURI(tokenURI); err != nil {
				fmt.Fprintf(errOut, "invalid --token-uri: %v\n", err)
				return 2
			}
		}
		msg.Mint = &cw721.Mint{TokenID: tokenID, Owner: owner, TokenURI: tokenURI}
	case "burn":
		if tokenID == "" {
			fmt.Fprintln(errOut, "burn needs --token-id")
			return 2
		}
		msg.Burn = &cw721.Burn{TokenID: tokenID}
	case "approve":
		if spender == "" || tokenID == "" {
			fmt.Fprintln(errOut, "approve needs --spender and --token-id")
			return 2
		}
		msg.Approve = &cw721.Approve{Spender: spender, TokenID: tokenID}
	case "revoke":
		if spender == "" || tokenID == "" {
			fmt.Fprintln(errOut, "revoke needs --spender and --token-id")
			return 2
		}
		msg.Revoke = &cw721.Revoke{Spender: spender, TokenID: tokenID}
	case "approve-all":
		if operator == "" {
			fmt.Fprintln(errOut, "approve-all needs --operator")
			return 2
		}
		msg.ApproveAll = &cw721.ApproveAll{Operator: operator}
	case "revoke-all":
		if operator == "" {
			fmt.Fprintln(errOut, "revoke-all needs --operator")
			return 2
		}
		msg.RevokeAll = &cw721.RevokeAll{Operator: operator}
	default:
		fmt.Fprintf(errOut, "unknown call variant: %s\n", variant)
		return 2
	}

	env, err := cw721.New(contract).Call(msg)
	if err != nil {
		fmt.Fprintf(errOut, "build envelope: %v\n", err)
		return 1
	}
	return printCanonical(out, errOut, env)
}

// ---- queries ----

// queryFlags holds the flags shared by all query subcommands.
type queryFlags struct {
	contract string
	backend  string
	config   string
}

func newQueryFlagSet(name string, errOut io.Writer, qf *queryFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&qf.contract, "contract", "", "Target contract address")
	fs.StringVar(&qf.backend, "backend", "grpc", "Querier backend name")
	fs.StringVar(&qf.config, "query-config", "", "Open backends from a JSON config file")
	queryregistry.RegisterFlags(fs, queryregistry.UsageCLI)
	return fs
}

func openQuerier(qf *queryFlags, errOut io.Writer) (querier.Querier, func() error, bool) {
	if qf.config != "" {
		cfg, err := queryconfig.LoadFile(qf.config)
		if err != nil {
			fmt.Fprintf(errOut, "query config: %v\n", err)
			return nil, nil, false
		}
		q, closeFn, err := queryconfig.Open(cfg, queryregistry.UsageCLI)
		if err != nil {
			fmt.Fprintf(errOut, "query config: %v\n", err)
			return nil, nil, false
		}
		return q, closeFn, true
	}
	q, closeFn, err := queryregistry.Open(qf.backend, queryregistry.UsageCLI)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return nil, nil, false
	}
	return q, closeFn, true
}

func runQuery(args []string, out, errOut io.Writer, name string, bind func(fs *flag.FlagSet), do func(c cw721.Contract, q querier.Querier) (any, error)) int {
	var qf queryFlags
	fs := newQueryFlagSet(name, errOut, &qf)
	if bind != nil {
		bind(fs)
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if qf.contract == "" {
		fmt.Fprintln(errOut, "missing --contract")
		return 2
	}

	q, closeFn, ok := openQuerier(&qf, errOut)
	if !ok {
		return 1
	}
	if closeFn != nil {
		defer closeFn()
	}

	resp, err := do(cw721.New(qf.contract), q)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", name, err)
		return 1
	}
	return printCanonical(out, errOut, resp)
}

func cmdOwnerOf(args []string, out io.Writer, errOut io.Writer) int {
	var tokenID string
	return runQuery(args, out, errOut, "owner-of",
		func(fs *flag.FlagSet) { fs.StringVar(&tokenID, "token-id", "", "Token identifier") },
		func(c cw721.Contract, q querier.Querier) (any, error) {
			if tokenID == "" {
				return nil, fmt.Errorf("missing --token-id")
			}
			return c.OwnerOf(q, tokenID)
		})
}

func cmdAllTokens(args []string, out io.Writer, errOut io.Writer) int {
	return runQuery(args, out, errOut, "all-tokens", nil,
		func(c cw721.Contract, q querier.Querier) (any, error) {
			return c.AllTokens(q)
		})
}

func cmdNumTokens(args []string, out io.Writer, errOut io.Writer) int {
	return runQuery(args, out, errOut, "num-tokens", nil,
		func(c cw721.Contract, q querier.Querier) (any, error) {
			return c.NumTokens(q)
		})
}

func cmdNftInfo(args []string, out io.Writer, errOut io.Writer) int {
	var tokenID string
	return runQuery(args, out, errOut, "nft-info",
		func(fs *flag.FlagSet) { fs.StringVar(&tokenID, "token-id", "", "Token identifier") },
		func(c cw721.Contract, q querier.Querier) (any, error) {
			if tokenID == "" {
				return nil, fmt.Errorf("missing --token-id")
			}
			return c.NftInfo(q, tokenID)
		})
}

func cmdTokens(args []string, out io.Writer, errOut io.Writer) int {
	var owner string
	return runQuery(args, out, errOut, "tokens",
		func(fs *flag.FlagSet) { fs.StringVar(&owner, "owner", "", "Owner account") },
		func(c cw721.Contract, q querier.Querier) (any, error) {
			if owner == "" {
				return nil, fmt.Errorf("missing --owner")
			}
			return c.Tokens(q, owner, nil, nil)
		})
}

// ---- key management ----

func cmdKey(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printKeyUsage(errOut)
		return 2
	}
	switch args[0] {
	case "init":
		return cmdKeyInit(args[1:], out, errOut)
	case "derive":
		return cmdKeyDerive(args[1:], out, errOut)
	case "list":
		return cmdKeyList(args[1:], out, errOut)
	case "export":
		return cmdKeyExport(args[1:], out, errOut)
	case "help", "-h", "--help":
		printKeyUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown key subcommand: %s\n\n", args[0])
		printKeyUsage(errOut)
		return 2
	}
}

func printKeyUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-nft key init --name <name> [--seed-hex <64hex>] [--force]")
	fmt.Fprintln(w, "  xdao-nft key derive --from <name> --purpose <purpose> [--force]")
	fmt.Fprintln(w, "  xdao-nft key list")
	fmt.Fprintln(w, "  xdao-nft key export --name <name> [--purpose <purpose>]")
}

func cmdKeyInit(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key init", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var seedHex string
	var force bool

	fs.StringVar(&name, "name", "", "Key name (directory under ~/.xdao/nftwire/keys)")
	fs.StringVar(&seedHex, "seed-hex", "", "Optional ed25519 seed as 64 hex chars (for reproducible demos)")
	fs.BoolVar(&force, "force", false, "Overwrite existing key files")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	if err := keys.CheckKeyName(name); err != nil {
		fmt.Fprintf(errOut, "invalid --name: %v\n", err)
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}

	var seed []byte
	if seedHex != "" {
		var derr error
		seed, derr = keys.ParseSeedHex(seedHex)
		if derr != nil {
			fmt.Fprintf(errOut, "invalid --seed-hex: %v\n", derr)
			return 2
		}
	} else {
		seed = make([]byte, ed25519.SeedSize)
		if _, err := rand.Read(seed); err != nil {
			fmt.Fprintf(errOut, "rand: %v\n", err)
			return 1
		}
	}

	accountKey, rootPath, err := ks.InitializeRootKey(name, seed, force)
	if err != nil {
		fmt.Fprintf(errOut, "write key: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Created root key: %s\n", accountKey)
	fmt.Fprintf(out, "Stored at: %s\n", rootPath)
	return 0
}

func cmdKeyDerive(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key derive", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var from string
	var purpose string
	var force bool

	fs.StringVar(&from, "from", "", "Root key name")
	fs.StringVar(&purpose, "purpose", "", "Purpose identifier (e.g. minting, trading)")
	fs.BoolVar(&force, "force", false, "Overwrite existing key files")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if from == "" {
		fmt.Fprintln(errOut, "missing --from")
		return 2
	}
	if purpose == "" {
		fmt.Fprintln(errOut, "missing --purpose")
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	accountKey, purposePath, err := ks.DeriveKeyForPurpose(from, purpose, force)
	if err != nil {
		fmt.Fprintf(errOut, "derive purpose key: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Created purpose key: %s\n", accountKey)
	fmt.Fprintf(out, "Stored at: %s\n", purposePath)
	return 0
}

func cmdKeyList(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "key list takes no arguments")
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	entries, err := ks.ListKeys()
	if err != nil {
		fmt.Fprintf(errOut, "list keys: %v\n", err)
		return 1
	}
	for _, e := range entries {
		fmt.Fprintln(out, e.Identifier)
		for _, p := range e.Purposes {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
	return 0
}

func cmdKeyExport(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key export", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var purpose string
	fs.StringVar(&name, "name", "", "Key name")
	fs.StringVar(&purpose, "purpose", "", "Optional purpose")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	accountKey, err := ks.ExportKey(name, purpose)
	if err != nil {
		fmt.Fprintf(errOut, "export key: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, accountKey)
	return 0
}

// ---- signing ----

func cmdSign(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var in, seedHex, signer, signerPurpose, keyFile string
	fs.StringVar(&in, "in", "", "Envelope JSON file (as printed by call)")
	fs.StringVar(&seedHex, "seed-hex", "", "Ed25519 seed as 64 hex chars")
	fs.StringVar(&signer, "signer", "", "Keystore key name")
	fs.StringVar(&signerPurpose, "signer-purpose", "", "Optional keystore purpose")
	fs.StringVar(&keyFile, "key-file", "", "Seed file path")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if in == "" {
		fmt.Fprintln(errOut, "missing --in")
		return 2
	}
	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(errOut, "read --in: %v\n", err)
		return 1
	}
	var env wasm.CosmosMsg
	if err := json.Unmarshal(b, &env); err != nil {
		fmt.Fprintf(errOut, "decode envelope: %v\n", err)
		return 1
	}

	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	seed, err := ks.LoadSeed(seedHex, signer, signerPurpose, keyFile)
	if err != nil {
		fmt.Fprintf(errOut, "load signer: %v\n", err)
		return 2
	}

	signed, err := tx.SignEd25519(env, ed25519.NewKeyFromSeed(seed))
	if err != nil {
		fmt.Fprintf(errOut, "sign: %v\n", err)
		return 1
	}
	return printCanonical(out, errOut, signed)
}

func cmdVerify(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var in string
	fs.StringVar(&in, "in", "", "Signed transaction JSON file")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if in == "" {
		fmt.Fprintln(errOut, "missing --in")
		return 2
	}
	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(errOut, "read --in: %v\n", err)
		return 1
	}
	var signed tx.Signed
	if err := json.Unmarshal(b, &signed); err != nil {
		fmt.Fprintf(errOut, "decode transaction: %v\n", err)
		return 1
	}
	if err := signed.Verify(); err != nil {
		fmt.Fprintf(errOut, "verify: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "OK signer=%s\n", signed.SignerKey)
	return 0
}

// ---- metadata ----

func cmdMetadataCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("metadata-cid", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var uri string
	fs.StringVar(&uri, "uri", "", "Verify the file against this ipfs:// token URI")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "metadata-cid takes exactly one file argument")
		return 2
	}
	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read file: %v\n", err)
		return 1
	}

	if uri != "" {
		if err := cw721.VerifyMetadata(uri, b); err != nil {
			fmt.Fprintf(errOut, "verify metadata: %v\n", err)
			return 1
		}
		fmt.Fprintln(out, "OK")
		return 0
	}
	fmt.Fprintln(out, cidutil.CIDv1RawSHA256(b))
	return 0
}

func printCanonical(out, errOut io.Writer, v any) int {
	b, err := wasm.MarshalCanonical(v)
	if err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "%s\n", b)
	return 0
}
