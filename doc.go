/*
Package radatext holds the shared types for a pair of small tools used to
normalize an archive of scraped law documents:

  - radaconv walks one directory of Windows-1251 encoded files and rewrites
    each matching file as UTF-8 into a destination directory, keeping the
    filename. One bad file is logged and skipped; the batch continues.
  - radatext reads a single HTML file and prints the visible text of its
    body, the way a browser would render it with tags, scripts and styles
    removed.

The heavy lifting lives in the batch and extract packages:

    task := radatext.Task{InputDir: src, OutputDir: dst, Mask: "d0*.htm"}
    runner := batch.NewRunner(batch.WithLogger(logger))
    summary, err := runner.Run(task)

    text, err := extract.TextFromFile("d188.htm")

The source encoding is a fixed assumption (see the transcode package); no
encoding detection is performed.
*/
package radatext
