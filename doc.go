// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/moduledoc

/*
Package moduledoc renders osbuild module metadata into markdown reference pages.

Every osbuild stage and source ships a *.meta.json file with a summary,
description lines and up to two JSON schemas. The package turns one such file
into a CommonMark page and keeps a documentation tree in sync with a fresh
shallow clone of the osbuild repository.

Render one metadata file:

	md, err := moduledoc.RenderFile(afero.NewOsFs(), "stages/org.osbuild.chrony.meta.json", moduledoc.Options{})
	if err != nil {
		return err
	}

	fmt.Println(md)

Render from decoded record with custom template text:

	record, err := moduledoc.ParseRecord(data)
	if err != nil {
		return err
	}

	md, err := moduledoc.Render(moduledoc.NewDocument("org.osbuild.chrony", record), moduledoc.Options{
		TemplateText: "# {{ .Title }}\n\n{{ .Summary }}\n",
	})
	if err != nil {
		return err
	}

Regenerate stages and sources pages under current directory:

	ctx := log.WithContext(context.Background(), log.New(os.Stderr))

	result, err := moduledoc.Sync(ctx, moduledoc.SyncOptions{
		Config: moduledoc.DefaultConfig(),
	})
	if err != nil {
		return err
	}

	for _, category := range result.Categories {
		fmt.Printf("%s: %d pages\n", category.Name, len(category.Written))
	}

Summary and description text is escaped with EscapeText, so angle brackets
are shown literally instead of being parsed as HTML.
*/
package moduledoc
