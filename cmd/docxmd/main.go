package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/typeset/docxmd/docx"
	"github.com/typeset/docxmd/omml"
	"github.com/typeset/docxmd/wordml"
)

var (
	convertCmd      = kingpin.Command("convert", "Convert markdown to a Word document using a template for styles.")
	convertTemplate = convertCmd.Arg("template", "Template document.").Required().ExistingFile()
	convertInput    = convertCmd.Arg("input", "Markdown source file.").Required().ExistingFile()
	convertOutput   = convertCmd.Arg("output", "Output document.").Required().String()

	replaceCmd      = kingpin.Command("replace", "Replace text in a template, keeping all formatting.")
	replaceTemplate = replaceCmd.Arg("template", "Template document.").Required().ExistingFile()
	replaceOutput   = replaceCmd.Arg("output", "Output document.").Required().String()
	replacePairs    = replaceCmd.Arg("pairs", "Old and new text, alternating.").Required().Strings()
	replaceNoVerify = replaceCmd.Flag("no-verify", "Skip the structure check after replacing.").Bool()

	verifyCmd      = kingpin.Command("verify", "Check that an output document preserves template structure.")
	verifyTemplate = verifyCmd.Arg("template", "Template document.").Required().ExistingFile()
	verifyOutput   = verifyCmd.Arg("output", "Output document.").Required().ExistingFile()

	compareCmd     = kingpin.Command("compare", "List differences between two documents part by part.")
	compareLeft    = compareCmd.Arg("template", "Template document.").Required().ExistingFile()
	compareRight   = compareCmd.Arg("output", "Output document.").Required().ExistingFile()
	compareContent = compareCmd.Flag("show-content", "Show the beginning of differing text parts.").Bool()

	dumpCmd     = kingpin.Command("dump", "Parse a formula and print its equation tree.")
	dumpFormula = dumpCmd.Arg("formula", "Formula source, $ delimiters optional.").Required().String()
)

func main() {
	switch kingpin.Parse() {
	case convertCmd.FullCommand():
		kingpin.FatalIfError(convert(), "")

	case replaceCmd.FullCommand():
		kingpin.FatalIfError(replace(), "")

	case verifyCmd.FullCommand():
		kingpin.FatalIfError(verify(), "")

	case compareCmd.FullCommand():
		kingpin.FatalIfError(compare(), "")

	case dumpCmd.FullCommand():
		eq, err := omml.Parse(*dumpFormula)
		kingpin.FatalIfError(err, "")
		repr.Println(eq, repr.Indent("  "))
	}
}

func convert() error {
	source, err := os.ReadFile(*convertInput)
	if err != nil {
		return err
	}

	xml, err := wordml.NewSession().DocumentXML(string(source))
	if err != nil {
		return err
	}

	if err := docx.CreateFromTemplate(*convertTemplate, *convertOutput, xml); err != nil {
		return err
	}

	fmt.Printf("Document created: %s\n", *convertOutput)

	return nil
}

func replace() error {
	pairs := *replacePairs
	if len(pairs)%2 != 0 {
		return fmt.Errorf("replacements must come in pairs, got %d arguments", len(pairs))
	}

	replacements := make([]docx.Replacement, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		replacements = append(replacements, docx.Replacement{Old: pairs[i], New: pairs[i+1]})
	}

	count, err := docx.Replace(*replaceTemplate, *replaceOutput, replacements)
	if err != nil {
		return err
	}

	fmt.Printf("Replaced %d of %d\n", count, len(replacements))

	if *replaceNoVerify {
		return nil
	}

	report, err := docx.Verify(*replaceTemplate, *replaceOutput)
	if err != nil {
		return err
	}

	printReport(report)

	if !report.Passed {
		os.Exit(1)
	}

	return nil
}

func verify() error {
	report, err := docx.Verify(*verifyTemplate, *verifyOutput)
	if err != nil {
		return err
	}

	printReport(report)

	if !report.Passed {
		os.Exit(1)
	}

	fmt.Println("OK")

	return nil
}

func compare() error {
	diffs, err := docx.Compare(*compareLeft, *compareRight, *compareContent)
	if err != nil {
		return err
	}

	fmt.Printf("Differences found: %d\n", len(diffs))
	for _, diff := range diffs {
		fmt.Printf("  - %s\n", diff)
	}

	if len(diffs) > 0 {
		os.Exit(1)
	}

	return nil
}

func printReport(report *docx.Report) {
	for _, message := range report.Errors {
		fmt.Printf("ERROR: %s\n", message)
	}

	for _, message := range report.Warnings {
		fmt.Printf("WARNING: %s\n", message)
	}
}
