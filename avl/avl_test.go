// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doLookup(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doLookup(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
		"2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197",
		"9227", "1166", "4216", "0866", "1791",
		"5395", "4310", "4452", "6140", "1494",
		"8859", "3394", "5507", "7295", "5408",
		"7789", "8237", "6990", "6882", "8243",
		"8894", "4352", "6727", "7019", "3126",
		"3102", "2948", "8242", "5027", "8892",
		"3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877",
		"2534", "2105", "6588", "9982", "3696",
		"3480", "2244", "7487", "2844", "3199",
		"5829", "6952", "6915", "0905", "7615",
	}

	doList(t, addList)
	doTraverse(t, addList)
	doLookup(t, addList)
}

// fail the test with a drawing of the tree if it is inconsistent
func mustBeConsistent(t *testing.T, tree *avl.Tree[string, string], stage string) {
	t.Helper()
	buffer := &bytes.Buffer{}
	if !tree.Check(buffer) {
		t.Errorf("%s: inconsistent tree:\n%s", stage, buffer.String())
		drawing := &bytes.Buffer{}
		depth := tree.Draw(drawing, true)
		t.Logf("depth: %d\n%s", depth, drawing.String())
		t.Fatal("inconsistent tree")
	}
	if 0 != buffer.Len() {
		t.Fatalf("%s: check passed but wrote: %q", stage, buffer.String())
	}
}

func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := avl.New[string, string]()
		for _, key := range addList {
			tree.Insert(key, "data:"+key)
		}

		mustBeConsistent(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Remove(key)
			ev := "data:" + key
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}

		mustBeConsistent(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Remove(key)
			ev := "data:" + key
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
			mustBeConsistent(t, tree, "remainder")
		}
		if !tree.IsEmpty() {
			drawing := &bytes.Buffer{}
			depth := tree.Draw(drawing, true)
			t.Logf("depth: %d\n%s", depth, drawing.String())
			t.Fatal("remaining nodes")
		}
	}
}

// traverse the tree in order and check the keys ascend
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := avl.New[string, string]()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key, "data:"+key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if p := tree.First(); nil == p || p.Key() != expected[0] {
		t.Fatalf("first item: %v  expected: %q", p, expected[0])
	}
	if p := tree.Last(); nil == p || p.Key() != expected[len(expected)-1] {
		t.Fatalf("last item: %v  expected: %q", p, expected[len(expected)-1])
	}

	n := 0
	for key, value := range tree.All() {
		if key != expected[n] {
			t.Fatalf("next item: actual: %q  expected: %q", key, expected[n])
		}
		if value != "data:"+key {
			t.Fatalf("item value: actual: %q  expected: %q", value, "data:"+key)
		}
		n += 1
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}

	// delete remainder
	for _, key := range expected {
		tree.Remove(key)
	}

	if !tree.IsEmpty() {
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

// use lookup to fetch each item
func doLookup(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := avl.New[string, string]()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key, "data:"+key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	for index, key := range expected {
		node := tree.Search(key)
		if nil == node {
			t.Fatalf("[%d] key: %q not it tree (nil result)", index, key)
		}
		if node.Key() != key {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Key())
		}
		if v := tree.Lookup(key); v != "data:"+key {
			t.Errorf("[%d]: lookup: %q value: %q", index, key, v)
		}
		if v := tree.Get(key); v != "data:"+key {
			t.Errorf("[%d]: get: %q value: %q", index, key, v)
		}
	}

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			tree.Remove(key)
		}
	}

	mustBeConsistent(t, tree, "delete even")

	for index, key := range expected {
		present := tree.Has(key)
		if 0 == index%2 && present {
			t.Fatalf("[%d] key: %q still in tree", index, key)
		}
		if 1 == index%2 && !present {
			t.Fatalf("[%d] key: %q not in tree", index, key)
		}
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New[string, string]()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, "data:"+key)
	}

	mustBeConsistent(t, tree, "add")

	for _, key := range d {
		tree.Remove(key)
		mustBeConsistent(t, tree, "delete")
	}

	// add back the test value
	testKey := "500"
	const testValue = "just testing data: test 500 value"
	tree.Insert(testKey, testValue)

	mustBeConsistent(t, tree, "add back")

	doTraverse(t, d)
	doLookup(t, d)

	// check that test value is searchable
	tv := tree.Search(testKey)
	if nil == tv {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testKey != tv.Key() {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.Key(), testKey)
	}
	if testValue != tv.Value() {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv.Value(), testValue)
	}

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	value, ok := tree.Remove(testKey)
	if !ok || value != testValue {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testValue)
	}
	tv = tree.Search(testKey)
	if nil != tv {
		t.Fatalf("test key not deleted and contains: %q", tv.Value())
	}
}

// check that inserted nodes can be overwritten
// and that nodes keep constant address when tree is re-balanced
func TestOverwriteAndNodeStability(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07", "08", "09", "10",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	mustBeConsistent(t, tree, "add")

	// overwrite a key
	oKey := "05"
	const newData = "new content for 05"
	if tree.Insert(oKey, newData) {
		t.Fatalf("overwrite of %q reported as a new node", oKey)
	}
	if len(addList) != tree.Count() {
		t.Fatalf("count after overwrite: %d  expected: %d", tree.Count(), len(addList))
	}

	mustBeConsistent(t, tree, "overwrite")

	// check overwrite
	node1 := tree.Search(oKey)
	if newData != node1.Value() {
		t.Fatalf("node data actual: %q  expected: %q", node1.Value(), newData)
	}

	// delete a node so the oKey node moves
	dKey := "06"
	tree.Remove(dKey)

	// ensure node did not move
	node2 := tree.Search(oKey)
	if node1 != node2 {
		t.Fatalf("node moved from: %p → %p", node1, node2)
	}
	mustBeConsistent(t, tree, "delete")
}

func TestNodesAtDepth(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	if n := len(tree.Root().NodesAtDepth(1)); n != 2 {
		t.Fatalf("incorrect children number in depth 1: %d", n)
	}

	if n := len(tree.Root().NodesAtDepth(2)); n != 4 {
		t.Fatalf("incorrect children number in depth 2: %d", n)
	}

	keys := []string{}
	for _, p := range tree.Root().NodesAtDepth(2) {
		keys = append(keys, p.Key())
	}
	if fmt.Sprint(keys) != "[01 03 05 07]" {
		t.Fatalf("depth 2 keys: %v", keys)
	}
}
