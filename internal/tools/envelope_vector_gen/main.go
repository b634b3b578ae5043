// Command envelope_vector_gen regenerates the golden wire vectors used by
// the cw721 package tests. Output is one NAME<TAB>JSON line per vector.
package main

import (
	"fmt"

	"xdao.co/nftwire/cw721"
	"xdao.co/nftwire/wasm"
)

const contractAddr = "contractA"

func mustCanonical(v any) string {
	b, err := wasm.MarshalCanonical(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func mustCall(msg cw721.ExecuteMsg) string {
	env, err := cw721.New(contractAddr).Call(msg)
	if err != nil {
		panic(err)
	}
	return mustCanonical(env)
}

func mustSmartQuery(msg cw721.QueryMsg) string {
	inner, err := wasm.MarshalCanonical(msg)
	if err != nil {
		panic(err)
	}
	return mustCanonical(wasm.NewSmartQuery(contractAddr, inner))
}

func main() {
	vectors := []struct {
		name string
		json string
	}{
		{"execute_transfer", mustCall(cw721.ExecuteMsg{
			TransferNft: &cw721.TransferNft{Recipient: "bob", TokenID: "1"},
		})},
		{"execute_mint", mustCall(cw721.ExecuteMsg{
			Mint: &cw721.Mint{TokenID: "7", Owner: "alice"},
		})},
		{"execute_burn", mustCall(cw721.ExecuteMsg{
			Burn: &cw721.Burn{TokenID: "7"},
		})},
		{"query_owner_of", mustSmartQuery(cw721.QueryMsg{
			OwnerOf: &cw721.OwnerOfQuery{TokenID: "1"},
		})},
		{"query_all_tokens", mustSmartQuery(cw721.QueryMsg{
			AllTokens: &cw721.AllTokensQuery{},
		})},
	}

	for _, v := range vectors {
		fmt.Printf("%s\t%s\n", v.name, v.json)
	}
}
